package ml

import (
	"errors"
	"fmt"

	"github.com/soumikb/aquasense/internal/water"
)

// ErrFeatureMismatch marks an artifact pair fitted on a different feature
// set than the current measurement layout. This is a prediction error, not
// an availability error: the pair loaded fine but cannot serve this input.
var ErrFeatureMismatch = errors.New("artifacts were fitted on a different feature set")

// PredictSafeProbability assembles the feature vector in training order,
// applies the fitted scaler, and returns the classifier's probability of the
// Safe class.
func PredictSafeProbability(m water.Measurement, a *Artifacts) (float64, error) {
	if err := checkFeatureLayout(a); err != nil {
		return 0, err
	}

	scaled, err := a.Scaler.Transform(m.Features())
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrFeatureMismatch, err)
	}
	return a.Model.PredictProbability(scaled)
}

func checkFeatureLayout(a *Artifacts) error {
	current := water.FeatureNames()
	if len(a.FeatureNames) != len(current) {
		return fmt.Errorf("%w: fitted on %d features, this build uses %d",
			ErrFeatureMismatch, len(a.FeatureNames), len(current))
	}
	for i, name := range current {
		if a.FeatureNames[i] != name {
			return fmt.Errorf("%w: position %d is %q, this build expects %q",
				ErrFeatureMismatch, i, a.FeatureNames[i], name)
		}
	}
	return nil
}
