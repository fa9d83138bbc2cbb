package water

// Verdict is the deterministic outcome of the threshold rule set.
type Verdict struct {
	Safe       bool
	Violations []string // parameter names that failed, in canonical order
}

// Evaluate applies the five WHO thresholds to a measurement. The gate is a
// hard AND: every parameter must pass for a Safe verdict, and each failing
// parameter is recorded. Boundary values pass (inclusive thresholds).
//
// The same function labels training data and gates live predictions; it must
// stay pure and side-effect-free.
func Evaluate(m Measurement, t Thresholds) Verdict {
	var violations []string

	if m.PH < t.PHMin || m.PH > t.PHMax {
		violations = append(violations, ParamPH)
	}
	if m.Turbidity > t.TurbidityMax {
		violations = append(violations, ParamTurbidity)
	}
	if m.Conductivity > t.ConductivityMax {
		violations = append(violations, ParamConductivity)
	}
	if m.DissolvedOxygen < t.DissolvedOxygenMin {
		violations = append(violations, ParamDissolvedOxygen)
	}
	if m.TDS > t.TDSMax {
		violations = append(violations, ParamTDS)
	}

	return Verdict{
		Safe:       len(violations) == 0,
		Violations: violations,
	}
}
