package analysis

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/soumikb/aquasense/internal/ml"
	"github.com/soumikb/aquasense/internal/store"
	"github.com/soumikb/aquasense/internal/water"
)

// fakeEventRepo captures appended analyses without a database.
type fakeEventRepo struct {
	store.EventRepo
	analyses []store.AnalysisEventData
}

func (f *fakeEventRepo) AppendAnalysis(_ context.Context, data store.AnalysisEventData) error {
	f.analyses = append(f.analyses, data)
	return nil
}

// trainArtifacts fits a small model on rule-labeled samples and saves it.
func trainArtifacts(t *testing.T) string {
	t.Helper()
	th := water.DefaultThresholds()

	var x [][]float64
	var y []int
	add := func(m water.Measurement) {
		x = append(x, m.Features())
		if water.Evaluate(m, th).Safe {
			y = append(y, 1)
		} else {
			y = append(y, 0)
		}
	}
	for i := 0; i < 20; i++ {
		f := float64(i)
		add(water.Measurement{PH: 6.8 + 0.05*f, Turbidity: 1 + 0.1*f, Conductivity: 200 + 5*f, DissolvedOxygen: 7 + 0.05*f, TDS: 150 + 5*f})
		add(water.Measurement{PH: 9 + 0.05*f, Turbidity: 8 + 0.2*f, Conductivity: 900 + 10*f, DissolvedOxygen: 2, TDS: 700 + 10*f})
	}

	cfg := ml.DefaultTrainConfig()
	cfg.Boost.Estimators = 40
	artifacts, _, err := ml.Train(x, y, water.FeatureNames(), cfg)
	if err != nil {
		t.Fatalf("train: %v", err)
	}

	path := filepath.Join(t.TempDir(), "model.json")
	if err := artifacts.Save(path); err != nil {
		t.Fatalf("save artifacts: %v", err)
	}
	return path
}

func TestAssess_RuleFailureGatesModel(t *testing.T) {
	path := trainArtifacts(t)
	svc := NewService(water.DefaultThresholds(), path, nil)

	a, err := svc.Assess(context.Background(), water.Measurement{
		PH: 9.5, Turbidity: 2, Conductivity: 300, DissolvedOxygen: 7, TDS: 192,
	})
	if err != nil {
		t.Fatalf("assess: %v", err)
	}

	if a.Decision != DecisionUnsafe {
		t.Errorf("decision = %q, want unsafe", a.Decision)
	}
	if a.ModelUsed {
		t.Error("model consulted despite rule failure")
	}
	if a.Probability == nil || *a.Probability != 0 {
		t.Errorf("probability = %v, want 0 for a gated sample", a.Probability)
	}
	if len(a.Verdict.Violations) != 1 || a.Verdict.Violations[0] != water.ParamPH {
		t.Errorf("violations = %v, want [pH]", a.Verdict.Violations)
	}
}

func TestAssess_SafeSampleUsesModel(t *testing.T) {
	path := trainArtifacts(t)
	svc := NewService(water.DefaultThresholds(), path, nil)

	a, err := svc.Assess(context.Background(), water.Measurement{
		PH: 7.1, Turbidity: 1.5, Conductivity: 250, DissolvedOxygen: 7.2, TDS: 160,
	})
	if err != nil {
		t.Fatalf("assess: %v", err)
	}

	if !a.ModelUsed {
		t.Fatal("model not consulted for a rule-passing sample")
	}
	if a.Probability == nil {
		t.Fatal("probability missing")
	}
	if *a.Probability < 0.5 {
		t.Errorf("probability = %v on a clearly clean sample, want ≥ 0.5", *a.Probability)
	}
	if a.Decision != DecisionSafe {
		t.Errorf("decision = %q, want safe", a.Decision)
	}
	if a.ModelRunID == "" {
		t.Error("model run ID not propagated")
	}
}

func TestAssess_MissingArtifactsFallsBackToRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.json")
	svc := NewService(water.DefaultThresholds(), path, nil)

	a, err := svc.Assess(context.Background(), water.Measurement{
		PH: 7.1, Turbidity: 1.5, Conductivity: 250, DissolvedOxygen: 7.2, TDS: 160,
	})
	if err != nil {
		t.Fatalf("assess without artifacts: %v", err)
	}

	if a.Decision != DecisionSafe {
		t.Errorf("decision = %q, want safe from rules alone", a.Decision)
	}
	if a.ModelUsed {
		t.Error("model reported as used without artifacts")
	}
	if a.Probability != nil {
		t.Errorf("probability = %v, want nil without a model", *a.Probability)
	}
}

func TestAssess_FeatureMismatchIsAnError(t *testing.T) {
	path := trainArtifacts(t)

	// Rewrite the artifacts with a truncated feature list.
	artifacts, err := ml.LoadArtifacts(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	artifacts.FeatureNames = artifacts.FeatureNames[:3]
	if err := artifacts.Save(path); err != nil {
		t.Fatalf("resave: %v", err)
	}

	svc := NewService(water.DefaultThresholds(), path, nil)
	_, err = svc.Assess(context.Background(), water.Measurement{
		PH: 7.1, Turbidity: 1.5, Conductivity: 250, DissolvedOxygen: 7.2, TDS: 160,
	})
	if err == nil {
		t.Fatal("expected error for incompatible artifacts")
	}
}

func TestAssess_InvalidMeasurementRejected(t *testing.T) {
	svc := NewService(water.DefaultThresholds(), filepath.Join(t.TempDir(), "m.json"), nil)

	_, err := svc.Assess(context.Background(), water.Measurement{
		PH: -2, Turbidity: 1, Conductivity: 250, DissolvedOxygen: 7, TDS: 160,
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
}

func TestAssess_RecordsEvent(t *testing.T) {
	path := trainArtifacts(t)
	repo := &fakeEventRepo{}
	svc := NewService(water.DefaultThresholds(), path, repo)

	_, err := svc.Assess(context.Background(), water.Measurement{
		PH: 9.5, Turbidity: 9, Conductivity: 950, DissolvedOxygen: 2, TDS: 700,
	})
	if err != nil {
		t.Fatalf("assess: %v", err)
	}

	if len(repo.analyses) != 1 {
		t.Fatalf("got %d recorded analyses, want 1", len(repo.analyses))
	}
	rec := repo.analyses[0]
	if rec.Decision != string(DecisionUnsafe) {
		t.Errorf("recorded decision = %q, want unsafe", rec.Decision)
	}
	if rec.RuleSafe {
		t.Error("recorded as rule-safe")
	}
	if len(rec.Violations) != 5 {
		t.Errorf("recorded violations = %v, want all five", rec.Violations)
	}
}

func TestAssess_CustomThresholdsRespected(t *testing.T) {
	th := water.DefaultThresholds()
	th.TurbidityMax = 1.0
	svc := NewService(th, filepath.Join(t.TempDir(), "m.json"), nil)

	a, err := svc.Assess(context.Background(), water.Measurement{
		PH: 7.1, Turbidity: 1.5, Conductivity: 250, DissolvedOxygen: 7.2, TDS: 160,
	})
	if err != nil {
		t.Fatalf("assess: %v", err)
	}
	if a.Decision != DecisionUnsafe {
		t.Errorf("decision = %q under a stricter turbidity cap, want unsafe", a.Decision)
	}
}
