package ml

import (
	"math"
	"testing"
)

// separable2D builds a toy dataset where class 1 clusters around (+2,+2)
// and class 0 around (-2,-2).
func separable2D() ([][]float64, []int) {
	var x [][]float64
	var y []int
	offsets := []float64{-0.6, -0.3, 0, 0.3, 0.6}
	for _, dx := range offsets {
		for _, dy := range offsets {
			x = append(x, []float64{2 + dx, 2 + dy})
			y = append(y, 1)
			x = append(x, []float64{-2 + dx, -2 + dy})
			y = append(y, 0)
		}
	}
	return x, y
}

func TestFitBoostedClassifier_SeparatesClasses(t *testing.T) {
	x, y := separable2D()
	model, err := FitBoostedClassifier(x, y, DefaultBoostConfig())
	if err != nil {
		t.Fatalf("got error %v, want nil", err)
	}

	if len(model.Trees) != 300 {
		t.Errorf("got %d trees, want 300", len(model.Trees))
	}

	for i, row := range x {
		p, err := model.PredictProbability(row)
		if err != nil {
			t.Fatal(err)
		}
		if y[i] == 1 && p < 0.5 {
			t.Errorf("positive sample %v got probability %v, want ≥ 0.5", row, p)
		}
		if y[i] == 0 && p >= 0.5 {
			t.Errorf("negative sample %v got probability %v, want < 0.5", row, p)
		}
	}
}

func TestFitBoostedClassifier_Deterministic(t *testing.T) {
	x, y := separable2D()
	a, err := FitBoostedClassifier(x, y, DefaultBoostConfig())
	if err != nil {
		t.Fatal(err)
	}
	b, err := FitBoostedClassifier(x, y, DefaultBoostConfig())
	if err != nil {
		t.Fatal(err)
	}

	probe := []float64{0.5, -1.2}
	pa, _ := a.PredictProbability(probe)
	pb, _ := b.PredictProbability(probe)
	if pa != pb {
		t.Errorf("two fits on identical data disagree: %v vs %v", pa, pb)
	}
}

func TestPredictProbability_Range(t *testing.T) {
	x, y := separable2D()
	model, err := FitBoostedClassifier(x, y, BoostConfig{Estimators: 50, LearningRate: 0.1, MaxDepth: 2, MinLeaf: 2})
	if err != nil {
		t.Fatal(err)
	}
	for _, probe := range [][]float64{{0, 0}, {100, 100}, {-100, -100}} {
		p, err := model.PredictProbability(probe)
		if err != nil {
			t.Fatal(err)
		}
		if p < 0 || p > 1 || math.IsNaN(p) {
			t.Errorf("probability for %v = %v, want within [0,1]", probe, p)
		}
	}
}

func TestFitBoostedClassifier_RejectsNonBinaryLabels(t *testing.T) {
	_, err := FitBoostedClassifier([][]float64{{1}, {2}}, []int{0, 2}, DefaultBoostConfig())
	if err == nil {
		t.Errorf("label 2 accepted, want error")
	}
}

func TestPredictProbability_ArityMismatch(t *testing.T) {
	x, y := separable2D()
	model, err := FitBoostedClassifier(x, y, BoostConfig{Estimators: 10, LearningRate: 0.1, MaxDepth: 2, MinLeaf: 2})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := model.PredictProbability([]float64{1}); err == nil {
		t.Errorf("one feature accepted by a two-feature model, want error")
	}
}
