package dataset

import (
	"testing"

	"github.com/soumikb/aquasense/internal/water"
)

func TestLabelSample_MatchesRuleVerdict(t *testing.T) {
	th := water.DefaultThresholds()
	samples := []Sample{
		{Measurement: okMeasurement(), Temperature: 25},
		{Measurement: water.Measurement{PH: 9.5, Turbidity: 2, Conductivity: 300, DissolvedOxygen: 7, TDS: 192}, Temperature: 25},
		{Measurement: water.Measurement{PH: 7, Turbidity: 8, Conductivity: 900, DissolvedOxygen: 3, TDS: 700}, Temperature: 25},
	}

	labels := LabelAll(samples, th)

	for i, s := range samples {
		want := Unsafe
		if water.Evaluate(s.Measurement, th).Safe {
			want = Safe
		}
		if labels[i] != want {
			t.Errorf("sample %d: got label %v, want %v", i, labels[i], want)
		}
	}
	if labels[0] != Safe || labels[1] != Unsafe || labels[2] != Unsafe {
		t.Errorf("got labels %v, want [1 0 0]", labels)
	}
}

func TestLabelAll_ThresholdChangeRelabels(t *testing.T) {
	s := Sample{Measurement: water.Measurement{PH: 7, Turbidity: 2, Conductivity: 450, DissolvedOxygen: 7, TDS: 288}, Temperature: 25}

	strict := water.DefaultThresholds() // conductivity ceiling 400
	if got := LabelSample(s, strict); got != Unsafe {
		t.Errorf("got %v under strict thresholds, want Unsafe", got)
	}

	relaxed := strict
	relaxed.ConductivityMax = 800
	if got := LabelSample(s, relaxed); got != Safe {
		t.Errorf("got %v under relaxed thresholds, want Safe", got)
	}
}
