package insights

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/soumikb/aquasense/internal/analysis"
	"github.com/soumikb/aquasense/internal/llm"
	"github.com/soumikb/aquasense/internal/water"
)

var validReportJSON = json.RawMessage(`{
	"classification": "The sample is unsafe for drinking.",
	"key_issues": ["Turbidity of 8 NTU exceeds the 5 NTU limit, likely suspended sediment"],
	"treatments": ["Coagulation and filtration", "Chlorination after filtration"],
	"post_treatment_uses": ["Drinking after full treatment", "Irrigation"],
	"health_considerations": ["Turbid water can shield pathogens from disinfection"],
	"conclusion": "Treat before any domestic use."
}`)

func unsafeInput() ReportInput {
	m := water.Measurement{PH: 7.0, Turbidity: 8, Conductivity: 300, DissolvedOxygen: 7, TDS: 192}
	th := water.DefaultThresholds()
	return ReportInput{
		Assessment: analysis.Assessment{
			Measurement: m,
			Verdict:     water.Evaluate(m, th),
			Decision:    analysis.DecisionUnsafe,
		},
		Thresholds: th,
	}
}

func TestGenerate_ParsesReport(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validReportJSON})
	svc := NewService(mock, DefaultConfig())

	report, err := svc.Generate(context.Background(), unsafeInput())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if !strings.Contains(report.Classification, "unsafe") {
		t.Errorf("classification = %q", report.Classification)
	}
	if len(report.Treatments) != 2 {
		t.Errorf("treatments = %v, want 2 entries", report.Treatments)
	}
	if report.Conclusion == "" {
		t.Error("conclusion empty")
	}
	if report.GeneratedAt.IsZero() {
		t.Error("generated timestamp not set")
	}
}

func TestGenerate_SendsSchemaAndPrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validReportJSON})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Generate(context.Background(), unsafeInput())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "water-insight-report" {
		t.Errorf("schema = %+v, want water-insight-report", req.Schema)
	}
	if !strings.Contains(req.System, "water-treatment") {
		t.Errorf("system prompt missing role: %q", req.System)
	}
	userMsg := req.Messages[0].Content
	for _, want := range []string{"Turbidity: 8.00 NTU", "Failed thresholds: Turbidity", "Final decision"} {
		if !strings.Contains(userMsg, want) {
			t.Errorf("user message missing %q:\n%s", want, userMsg)
		}
	}
}

func TestGenerate_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue → provider unavailable
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Generate(context.Background(), unsafeInput())
	if err == nil {
		t.Fatal("expected error from failing provider")
	}
}

func TestGenerate_MalformedResponseRejected(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Generate(context.Background(), unsafeInput())
	if err == nil {
		t.Fatal("expected parse error")
	}
}

func TestRequestAndConsumeReport(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validReportJSON})
	svc := NewService(mock, DefaultConfig())

	svc.RequestReport(context.Background(), unsafeInput())

	deadline := time.After(2 * time.Second)
	for {
		report, done, err := svc.ConsumeReport()
		if done {
			if err != nil {
				t.Fatalf("consume: %v", err)
			}
			if report == nil || report.Conclusion == "" {
				t.Fatalf("consumed report incomplete: %+v", report)
			}
			break
		}
		select {
		case <-deadline:
			t.Fatal("report never became ready")
		case <-time.After(5 * time.Millisecond):
		}
	}

	// Slot is cleared after consumption.
	if _, done, _ := svc.ConsumeReport(); done {
		t.Error("consume returned done twice for one request")
	}
}

func TestConsumeReport_SurfacesGenerationError(t *testing.T) {
	mock := llm.NewMockProvider() // will fail
	svc := NewService(mock, DefaultConfig())

	svc.RequestReport(context.Background(), unsafeInput())

	deadline := time.After(2 * time.Second)
	for {
		_, done, err := svc.ConsumeReport()
		if done {
			if err == nil {
				t.Fatal("expected surfaced error")
			}
			return
		}
		select {
		case <-deadline:
			t.Fatal("result never became ready")
		case <-time.After(5 * time.Millisecond):
		}
	}
}
