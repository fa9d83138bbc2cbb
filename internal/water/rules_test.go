package water

import (
	"reflect"
	"testing"
)

// Conductivity sits exactly at the 400 µS/cm ceiling: a passing sample may
// include boundary values, since boundaries are inclusive.
func safeMeasurement() Measurement {
	return Measurement{
		PH:              7.0,
		Turbidity:       2,
		Conductivity:    400,
		DissolvedOxygen: 7,
		TDS:             250,
	}
}

func TestEvaluate_AllWithinThresholds(t *testing.T) {
	v := Evaluate(safeMeasurement(), DefaultThresholds())
	if !v.Safe {
		t.Errorf("got Safe=false, want true")
	}
	if len(v.Violations) != 0 {
		t.Errorf("got violations %v, want none", v.Violations)
	}
}

func TestEvaluate_SingleViolation(t *testing.T) {
	m := safeMeasurement()
	m.PH = 9.0
	v := Evaluate(m, DefaultThresholds())
	if v.Safe {
		t.Errorf("got Safe=true, want false")
	}
	want := []string{ParamPH}
	if !reflect.DeepEqual(v.Violations, want) {
		t.Errorf("got violations %v, want %v", v.Violations, want)
	}
}

func TestEvaluate_AllViolations(t *testing.T) {
	m := Measurement{
		PH:              9.0,
		Turbidity:       10,
		Conductivity:    1000,
		DissolvedOxygen: 2,
		TDS:             600,
	}
	v := Evaluate(m, DefaultThresholds())
	if v.Safe {
		t.Errorf("got Safe=true, want false")
	}
	want := []string{ParamPH, ParamTurbidity, ParamConductivity, ParamDissolvedOxygen, ParamTDS}
	if !reflect.DeepEqual(v.Violations, want) {
		t.Errorf("got violations %v, want %v", v.Violations, want)
	}
}

func TestEvaluate_BoundariesPass(t *testing.T) {
	th := DefaultThresholds()
	tests := []struct {
		name string
		m    Measurement
	}{
		{"ph at lower bound", func() Measurement { m := safeMeasurement(); m.PH = th.PHMin; return m }()},
		{"ph at upper bound", func() Measurement { m := safeMeasurement(); m.PH = th.PHMax; return m }()},
		{"turbidity at ceiling", func() Measurement { m := safeMeasurement(); m.Turbidity = th.TurbidityMax; return m }()},
		{"conductivity at ceiling", func() Measurement { m := safeMeasurement(); m.Conductivity = th.ConductivityMax; return m }()},
		{"dissolved oxygen at floor", func() Measurement { m := safeMeasurement(); m.DissolvedOxygen = th.DissolvedOxygenMin; return m }()},
		{"tds at ceiling", func() Measurement { m := safeMeasurement(); m.TDS = th.TDSMax; return m }()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Evaluate(tt.m, th)
			if !v.Safe {
				t.Errorf("got Safe=false with violations %v, want boundary value to pass", v.Violations)
			}
		})
	}
}

func TestEvaluate_JustPastBoundaryFails(t *testing.T) {
	th := DefaultThresholds()
	m := safeMeasurement()
	m.Turbidity = th.TurbidityMax + 0.001
	v := Evaluate(m, th)
	if v.Safe {
		t.Errorf("got Safe=true just past turbidity ceiling, want false")
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	m := Measurement{PH: 5.0, Turbidity: 9, Conductivity: 100, DissolvedOxygen: 7, TDS: 100}
	th := DefaultThresholds()
	first := Evaluate(m, th)
	second := Evaluate(m, th)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("evaluations differ: %v vs %v", first, second)
	}
}

func TestEvaluate_ConductivityAndTDSIndependent(t *testing.T) {
	// Values deliberately inconsistent with the conversion factor; each is
	// judged against its own threshold.
	m := safeMeasurement()
	m.Conductivity = 390
	m.TDS = 450
	v := Evaluate(m, DefaultThresholds())
	want := []string{ParamTDS}
	if !reflect.DeepEqual(v.Violations, want) {
		t.Errorf("got violations %v, want %v", v.Violations, want)
	}
}
