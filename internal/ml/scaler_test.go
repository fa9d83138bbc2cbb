package ml

import (
	"math"
	"testing"
)

func TestFitScaler_MeanAndStd(t *testing.T) {
	x := [][]float64{{1, 10}, {2, 10}, {3, 10}}
	s, err := FitScaler(x)
	if err != nil {
		t.Fatalf("got error %v, want nil", err)
	}

	if s.Means[0] != 2 {
		t.Errorf("got mean %v, want 2", s.Means[0])
	}
	wantStd := math.Sqrt(2.0 / 3.0) // population std of {1,2,3}
	if math.Abs(s.Stds[0]-wantStd) > 1e-12 {
		t.Errorf("got std %v, want %v", s.Stds[0], wantStd)
	}

	// Constant column: std pinned to 1 so transform is a pure shift.
	if s.Stds[1] != 1 {
		t.Errorf("got constant-column std %v, want 1", s.Stds[1])
	}
}

func TestTransform_ZeroMeanUnitVariance(t *testing.T) {
	x := [][]float64{{2, 4}, {4, 8}, {6, 12}, {8, 16}}
	s, err := FitScaler(x)
	if err != nil {
		t.Fatal(err)
	}

	scaled, err := s.TransformAll(x)
	if err != nil {
		t.Fatal(err)
	}

	for j := 0; j < 2; j++ {
		var sum, sumSq float64
		for i := range scaled {
			sum += scaled[i][j]
			sumSq += scaled[i][j] * scaled[i][j]
		}
		n := float64(len(scaled))
		if math.Abs(sum/n) > 1e-12 {
			t.Errorf("column %d mean = %v, want 0", j, sum/n)
		}
		if math.Abs(sumSq/n-1) > 1e-12 {
			t.Errorf("column %d variance = %v, want 1", j, sumSq/n)
		}
	}
}

func TestTransform_ArityMismatch(t *testing.T) {
	s, err := FitScaler([][]float64{{1, 2}, {3, 4}})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Transform([]float64{1, 2, 3}); err == nil {
		t.Errorf("three features accepted by a two-feature scaler, want error")
	}
}

func TestFitScaler_Empty(t *testing.T) {
	if _, err := FitScaler(nil); err == nil {
		t.Errorf("empty input accepted, want error")
	}
}
