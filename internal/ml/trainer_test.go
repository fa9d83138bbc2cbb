package ml

import (
	"errors"
	"testing"

	"github.com/soumikb/aquasense/internal/water"
)

// ruleLabeledDataset builds water-like rows labeled by the threshold rules,
// with enough of each class for a split to retain both.
func ruleLabeledDataset() ([][]float64, []int) {
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
		// In-range samples.
		add(water.Measurement{PH: 6.8 + 0.05*f, Turbidity: 1 + 0.1*f, Conductivity: 200 + 5*f, DissolvedOxygen: 7 + 0.05*f, TDS: 150 + 5*f})
		// Clearly violating samples.
		add(water.Measurement{PH: 9 + 0.05*f, Turbidity: 8 + 0.2*f, Conductivity: 900 + 10*f, DissolvedOxygen: 2, TDS: 700 + 10*f})
	}
	return x, y
}

func TestTrain_ProducesArtifactsAndReport(t *testing.T) {
	x, y := ruleLabeledDataset()
	cfg := DefaultTrainConfig()
	cfg.Boost.Estimators = 50 // keep the test quick

	artifacts, report, err := Train(x, y, water.FeatureNames(), cfg)
	if err != nil {
		t.Fatalf("got error %v, want nil", err)
	}

	if artifacts.RunID == "" {
		t.Errorf("artifacts missing run ID")
	}
	if artifacts.SchemaVersion != ArtifactsSchemaVersion {
		t.Errorf("got schema version %d, want %d", artifacts.SchemaVersion, ArtifactsSchemaVersion)
	}
	if artifacts.Scaler.Dims() != 5 || artifacts.Model.Dims != 5 {
		t.Errorf("artifact pair dims %d/%d, want 5/5", artifacts.Scaler.Dims(), artifacts.Model.Dims)
	}
	if report.Accuracy < 0.9 {
		t.Errorf("accuracy %v on a separable dataset, want ≥ 0.9", report.Accuracy)
	}
}

func TestTrain_SingleClassFailsFast(t *testing.T) {
	x := make([][]float64, 20)
	y := make([]int, 20)
	for i := range x {
		x[i] = []float64{float64(i), 1, 2, 3, 4}
		y[i] = 1
	}

	_, _, err := Train(x, y, water.FeatureNames(), DefaultTrainConfig())
	if !errors.Is(err, ErrSingleClass) {
		t.Errorf("got %v, want ErrSingleClass", err)
	}
}

func TestTrain_TooFewRowsFailsFast(t *testing.T) {
	x := [][]float64{{1, 2, 3, 4, 5}, {2, 3, 4, 5, 6}}
	y := []int{0, 1}

	_, _, err := Train(x, y, water.FeatureNames(), DefaultTrainConfig())
	if !errors.Is(err, ErrInsufficientData) {
		t.Errorf("got %v, want ErrInsufficientData", err)
	}
}

func TestTrain_Reproducible(t *testing.T) {
	x, y := ruleLabeledDataset()
	cfg := DefaultTrainConfig()
	cfg.Boost.Estimators = 30

	a1, _, err := Train(x, y, water.FeatureNames(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	a2, _, err := Train(x, y, water.FeatureNames(), cfg)
	if err != nil {
		t.Fatal(err)
	}

	probe := []float64{7, 2, 300, 7, 192}
	p1, err := PredictSafeProbability(water.Measurement{PH: probe[0], Turbidity: probe[1], Conductivity: probe[2], DissolvedOxygen: probe[3], TDS: probe[4]}, a1)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := PredictSafeProbability(water.Measurement{PH: probe[0], Turbidity: probe[1], Conductivity: probe[2], DissolvedOxygen: probe[3], TDS: probe[4]}, a2)
	if err != nil {
		t.Fatal(err)
	}
	if p1 != p2 {
		t.Errorf("two runs with the same seed disagree: %v vs %v", p1, p2)
	}
}
