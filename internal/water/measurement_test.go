package water

import (
	"errors"
	"math"
	"testing"
)

func TestValidate_AcceptsNormalReadings(t *testing.T) {
	if err := safeMeasurement().Validate(); err != nil {
		t.Errorf("got error %v, want nil", err)
	}
}

func TestValidate_RejectsNonFinite(t *testing.T) {
	tests := []struct {
		name  string
		mod   func(*Measurement)
		param string
	}{
		{"NaN pH", func(m *Measurement) { m.PH = math.NaN() }, ParamPH},
		{"Inf turbidity", func(m *Measurement) { m.Turbidity = math.Inf(1) }, ParamTurbidity},
		{"negative Inf conductivity", func(m *Measurement) { m.Conductivity = math.Inf(-1) }, ParamConductivity},
		{"NaN tds", func(m *Measurement) { m.TDS = math.NaN() }, ParamTDS},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := safeMeasurement()
			tt.mod(&m)
			err := m.Validate()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("got %v, want *ValidationError", err)
			}
			if verr.Parameter != tt.param {
				t.Errorf("got parameter %q, want %q", verr.Parameter, tt.param)
			}
		})
	}
}

func TestValidate_RejectsPhysicallyImpossible(t *testing.T) {
	m := safeMeasurement()
	m.DissolvedOxygen = -1
	err := m.Validate()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %v, want *ValidationError", err)
	}
	if verr.Parameter != ParamDissolvedOxygen {
		t.Errorf("got parameter %q, want %q", verr.Parameter, ParamDissolvedOxygen)
	}

	m = safeMeasurement()
	m.PH = 15
	if m.Validate() == nil {
		t.Errorf("pH above 14 passed validation")
	}
}

func TestTDSConversionRoundTrip(t *testing.T) {
	ec := 300.0
	tds := TDSFromConductivity(ec)
	if tds != 192 {
		t.Errorf("got TDS %v, want 192", tds)
	}
	back := ConductivityFromTDS(tds)
	if math.Abs(back-ec) > 1e-9 {
		t.Errorf("round trip gave %v, want %v", back, ec)
	}
}

func TestFeatures_CanonicalOrder(t *testing.T) {
	m := Measurement{PH: 1, Turbidity: 2, Conductivity: 3, DissolvedOxygen: 4, TDS: 5}
	got := m.Features()
	want := []float64{1, 2, 3, 4, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("feature %d = %v, want %v", i, got[i], want[i])
		}
	}
	if len(FeatureNames()) != len(got) {
		t.Errorf("feature names and vector length differ")
	}
}
