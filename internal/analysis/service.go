package analysis

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/soumikb/aquasense/internal/ml"
	"github.com/soumikb/aquasense/internal/store"
	"github.com/soumikb/aquasense/internal/water"
)

// safeProbabilityCutoff is the model probability at or above which a
// rule-passing sample is called safe rather than treatable.
const safeProbabilityCutoff = 0.5

// Service assesses water samples by combining the threshold rules with the
// trained classifier. The rules always run first and act as a hard gate:
// a sample that fails any rule is unsafe no matter what the model says.
type Service struct {
	thresholds   water.Thresholds
	artifactPath string
	events       store.EventRepo
}

// NewService creates an assessment service. events may be nil, in which case
// assessments are not recorded.
func NewService(thresholds water.Thresholds, artifactPath string, events store.EventRepo) *Service {
	return &Service{
		thresholds:   thresholds,
		artifactPath: artifactPath,
		events:       events,
	}
}

// Thresholds returns the rule set the service evaluates against.
func (s *Service) Thresholds() water.Thresholds {
	return s.thresholds
}

// Assess validates and analyzes a single sample.
//
// Artifacts are read from disk on every call so a retrain takes effect
// without restarting the process. A missing or corrupt artifact file is not
// an error: the rule verdict stands on its own and the assessment reports
// that no model was used. An artifact file whose features disagree with the
// current schema is an error, since silently ignoring it would hide a broken
// deployment.
func (s *Service) Assess(ctx context.Context, m water.Measurement) (*Assessment, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	verdict := water.Evaluate(m, s.thresholds)

	a := &Assessment{
		Measurement: m,
		Verdict:     verdict,
	}

	if !verdict.Safe {
		// Hard gate: the model is not consulted for rule failures.
		zero := 0.0
		a.Probability = &zero
		a.Decision = DecisionUnsafe
	} else if err := s.applyModel(a); err != nil {
		return nil, err
	}

	s.record(ctx, a)
	return a, nil
}

// applyModel loads artifacts and scores a rule-passing sample.
func (s *Service) applyModel(a *Assessment) error {
	artifacts, err := ml.LoadArtifacts(s.artifactPath)
	if err != nil {
		if errors.Is(err, ml.ErrArtifactsUnavailable) {
			a.Decision = DecisionSafe
			return nil
		}
		return fmt.Errorf("load artifacts: %w", err)
	}

	prob, err := ml.PredictSafeProbability(a.Measurement, artifacts)
	if err != nil {
		return fmt.Errorf("predict: %w", err)
	}

	a.Probability = &prob
	a.ModelUsed = true
	a.ModelRunID = artifacts.RunID
	if prob >= safeProbabilityCutoff {
		a.Decision = DecisionSafe
	} else {
		a.Decision = DecisionTreatable
	}
	return nil
}

// record appends the assessment to the event store. Failures are reported
// but never fail the assessment itself.
func (s *Service) record(ctx context.Context, a *Assessment) {
	if s.events == nil {
		return
	}

	data := store.AnalysisEventData{
		PH:              a.Measurement.PH,
		Turbidity:       a.Measurement.Turbidity,
		Conductivity:    a.Measurement.Conductivity,
		DissolvedOxygen: a.Measurement.DissolvedOxygen,
		TDS:             a.Measurement.TDS,
		RuleSafe:        a.Verdict.Safe,
		Violations:      a.Verdict.Violations,
		Probability:     a.Probability,
		Decision:        string(a.Decision),
		ModelRunID:      a.ModelRunID,
	}

	if err := s.events.AppendAnalysis(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record analysis event: %v\n", err)
	}
}
