package analysis

import "github.com/soumikb/aquasense/internal/water"

// Decision is the final call on a water sample.
type Decision string

const (
	// DecisionSafe means the sample passed the threshold rules and the
	// model (when available) agreed.
	DecisionSafe Decision = "safe"

	// DecisionUnsafe means the sample failed at least one threshold rule.
	DecisionUnsafe Decision = "unsafe"

	// DecisionTreatable means the sample passed the rules but the model
	// flagged it as likely unsafe, so treatment is advised before use.
	DecisionTreatable Decision = "treatable"
)

// Label returns a human-readable description of the decision.
func (d Decision) Label() string {
	switch d {
	case DecisionSafe:
		return "Safe for drinking"
	case DecisionUnsafe:
		return "Unsafe: fails quality thresholds"
	case DecisionTreatable:
		return "Needs treatment before use"
	default:
		return string(d)
	}
}

// Assessment is the outcome of analyzing a single sample.
type Assessment struct {
	Measurement water.Measurement
	Verdict     water.Verdict

	// Probability is the model's probability that the sample is safe.
	// Zero-valued pointer semantics:
	//   - nil when no model artifacts were available
	//   - 0.0 when the sample failed a rule (the model is not consulted)
	//   - the model output otherwise
	Probability *float64

	// ModelUsed reports whether model artifacts contributed to the decision.
	ModelUsed bool

	// ModelRunID identifies the training run behind the model, when used.
	ModelRunID string

	Decision Decision
}
