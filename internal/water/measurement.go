package water

import (
	"fmt"
	"math"
)

// TDSConversionFactor is the fixed linear factor relating total dissolved
// solids to electrical conductivity (TDS ppm = factor × EC µS/cm). Input
// surfaces use it to keep the two fields synchronized; rule evaluation
// treats the two values independently.
const TDSConversionFactor = 0.64

// Parameter display names, used in verdicts and error messages.
const (
	ParamPH              = "pH"
	ParamTurbidity       = "Turbidity"
	ParamConductivity    = "Conductivity"
	ParamDissolvedOxygen = "DissolvedOxygen"
	ParamTDS             = "TDS"
)

// Measurement is a single water-quality sample: the five analysis parameters.
type Measurement struct {
	PH              float64 // unitless, 0–14
	Turbidity       float64 // NTU
	Conductivity    float64 // µS/cm
	DissolvedOxygen float64 // mg/L
	TDS             float64 // ppm
}

// FeatureNames returns the five feature column names in canonical order.
// This order is fixed: it is the training feature order and the inference
// vector order, and the two must never diverge.
func FeatureNames() []string {
	return []string{"ph", "turbidity", "conductivity", "dissolved_oxygen", "tds"}
}

// Features returns the measurement as a vector in canonical feature order.
func (m Measurement) Features() []float64 {
	return []float64{m.PH, m.Turbidity, m.Conductivity, m.DissolvedOxygen, m.TDS}
}

// TDSFromConductivity derives a TDS value from conductivity.
func TDSFromConductivity(ec float64) float64 {
	return ec * TDSConversionFactor
}

// ConductivityFromTDS derives a conductivity value from TDS.
func ConductivityFromTDS(tds float64) float64 {
	return tds / TDSConversionFactor
}

// ValidationError reports a measurement value that cannot be evaluated.
type ValidationError struct {
	Parameter string
	Value     float64
	Reason    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid measurement: %s = %v (%s)", e.Parameter, e.Value, e.Reason)
}

// Validate rejects values the rule set must never see: NaN, infinities, and
// physically impossible readings. Boundary-of-range values are left for the
// rule set to judge.
func (m Measurement) Validate() error {
	checks := []struct {
		param string
		value float64
	}{
		{ParamPH, m.PH},
		{ParamTurbidity, m.Turbidity},
		{ParamConductivity, m.Conductivity},
		{ParamDissolvedOxygen, m.DissolvedOxygen},
		{ParamTDS, m.TDS},
	}

	for _, c := range checks {
		if math.IsNaN(c.value) {
			return &ValidationError{Parameter: c.param, Value: c.value, Reason: "not a number"}
		}
		if math.IsInf(c.value, 0) {
			return &ValidationError{Parameter: c.param, Value: c.value, Reason: "infinite"}
		}
	}

	if m.PH < 0 || m.PH > 14 {
		return &ValidationError{Parameter: ParamPH, Value: m.PH, Reason: "outside the 0–14 scale"}
	}
	for _, c := range checks[1:] {
		if c.value < 0 {
			return &ValidationError{Parameter: c.param, Value: c.value, Reason: "negative"}
		}
	}

	return nil
}
