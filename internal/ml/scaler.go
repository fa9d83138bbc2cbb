package ml

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// StandardScaler normalizes features to zero mean and unit variance. It is
// fitted on the training split only and persisted alongside the classifier;
// the pair must never be mixed across training runs.
type StandardScaler struct {
	Means []float64 `json:"means"`
	Stds  []float64 `json:"stds"`
}

// FitScaler computes per-column mean and population standard deviation.
// Constant columns get a standard deviation of 1 so transforming them is a
// no-op instead of a division by zero.
func FitScaler(x [][]float64) (*StandardScaler, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("fit scaler: no rows")
	}
	dims := len(x[0])
	col := make([]float64, len(x))

	s := &StandardScaler{
		Means: make([]float64, dims),
		Stds:  make([]float64, dims),
	}

	for j := 0; j < dims; j++ {
		for i, row := range x {
			if len(row) != dims {
				return nil, fmt.Errorf("fit scaler: row %d has %d features, want %d", i, len(row), dims)
			}
			col[i] = row[j]
		}
		mean, variance := stat.MeanVariance(col, nil)
		// stat.MeanVariance is the unbiased estimate; rescale to the
		// population variance so a single fitted pair is self-consistent.
		n := float64(len(col))
		popVar := variance * (n - 1) / n

		s.Means[j] = mean
		if popVar > 0 {
			s.Stds[j] = math.Sqrt(popVar)
		} else {
			s.Stds[j] = 1
		}
	}

	return s, nil
}

// Dims returns the feature arity the scaler was fitted on.
func (s *StandardScaler) Dims() int {
	return len(s.Means)
}

// Transform scales a single feature vector.
func (s *StandardScaler) Transform(x []float64) ([]float64, error) {
	if len(x) != s.Dims() {
		return nil, fmt.Errorf("transform: got %d features, scaler fitted on %d", len(x), s.Dims())
	}
	out := make([]float64, len(x))
	for j, v := range x {
		out[j] = (v - s.Means[j]) / s.Stds[j]
	}
	return out, nil
}

// TransformAll scales a matrix row by row.
func (s *StandardScaler) TransformAll(x [][]float64) ([][]float64, error) {
	out := make([][]float64, len(x))
	for i, row := range x {
		scaled, err := s.Transform(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out[i] = scaled
	}
	return out, nil
}
