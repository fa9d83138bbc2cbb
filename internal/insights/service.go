package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/soumikb/aquasense/internal/llm"
)

// Service generates advisory reports. Generate is synchronous; the
// Request/Consume pair supports the TUI, which polls for completion.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	pending *Report
	err     error
	ready   bool
}

// NewService creates an advisory service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Generate produces an advisory report for an assessed sample.
func (s *Service) Generate(ctx context.Context, input ReportInput) (*Report, error) {
	ctx = llm.WithPurpose(ctx, "insight-report")

	req := llm.Request{
		System: reportSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildReportUserMessage(input)},
		},
		Schema:      ReportSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("advisory generation: %w", err)
	}

	var out reportOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse advisory response: %w", err)
	}

	return &Report{
		Classification:       out.Classification,
		KeyIssues:            out.KeyIssues,
		Treatments:           out.Treatments,
		PostTreatmentUses:    out.PostTreatmentUses,
		HealthConsiderations: out.HealthConsiderations,
		Conclusion:           out.Conclusion,
		GeneratedAt:          time.Now(),
	}, nil
}

// RequestReport starts async report generation. Only one report is in-flight
// at a time — new requests replace pending ones.
func (s *Service) RequestReport(ctx context.Context, input ReportInput) {
	go func() {
		report, err := s.Generate(ctx, input)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = report
		s.err = err
		s.ready = true
	}()
}

// ConsumeReport returns the pending report once it is ready. done is false
// while generation is still in flight. After consumption, the pending slot
// is cleared.
func (s *Service) ConsumeReport() (report *Report, done bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false, nil
	}
	report, err = s.pending, s.err
	s.pending = nil
	s.err = nil
	s.ready = false
	return report, true, err
}

type reportOutput struct {
	Classification       string   `json:"classification"`
	KeyIssues            []string `json:"key_issues"`
	Treatments           []string `json:"treatments"`
	PostTreatmentUses    []string `json:"post_treatment_uses"`
	HealthConsiderations []string `json:"health_considerations"`
	Conclusion           string   `json:"conclusion"`
}
