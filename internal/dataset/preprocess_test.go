package dataset

import (
	"math"
	"strings"
	"testing"

	"github.com/soumikb/aquasense/internal/water"
)

func TestPreprocess_FiltersAndDrops(t *testing.T) {
	rows, err := Load(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatal(err)
	}

	samples := Preprocess(rows)

	// Row 3 has a missing turbidity, row 4 is out of the temperature band,
	// row 5 has an unparseable pH. Two survive.
	if len(samples) != 2 {
		t.Fatalf("got %d samples, want 2", len(samples))
	}
	if samples[0].Measurement.PH != 7.0 {
		t.Errorf("first surviving sample pH = %v, want 7.0", samples[0].Measurement.PH)
	}
	if samples[1].Measurement.PH != 9.1 {
		t.Errorf("second surviving sample pH = %v, want 9.1", samples[1].Measurement.PH)
	}
}

func TestPreprocess_TemperatureBandInclusive(t *testing.T) {
	rows := []Row{
		{Measurement: okMeasurement(), Temperature: TempMin},
		{Measurement: okMeasurement(), Temperature: TempMax},
		{Measurement: okMeasurement(), Temperature: TempMin - 0.1},
		{Measurement: okMeasurement(), Temperature: TempMax + 0.1},
		{Measurement: okMeasurement(), Temperature: math.NaN()},
	}
	samples := Preprocess(rows)
	if len(samples) != 2 {
		t.Errorf("got %d samples, want 2 (band edges kept)", len(samples))
	}
}

func TestPreprocess_StableOrder(t *testing.T) {
	rows := []Row{
		{Measurement: water.Measurement{PH: 1, DissolvedOxygen: 7}, Temperature: 21},
		{Measurement: water.Measurement{PH: 2, DissolvedOxygen: 7}, Temperature: 22},
		{Measurement: water.Measurement{PH: 3, DissolvedOxygen: 7}, Temperature: 23},
	}
	samples := Preprocess(rows)
	for i, want := range []float64{1, 2, 3} {
		if samples[i].Measurement.PH != want {
			t.Fatalf("sample %d pH = %v, want %v (order must be stable)", i, samples[i].Measurement.PH, want)
		}
	}
}

func okMeasurement() water.Measurement {
	return water.Measurement{PH: 7, Turbidity: 2, Conductivity: 300, DissolvedOxygen: 7, TDS: 192}
}
