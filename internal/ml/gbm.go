package ml

import (
	"fmt"
	"math"
)

// GradientBoostedClassifier is a binary classifier: an additive ensemble of
// shallow regression trees fitted to logistic-loss gradients. Prediction is
// sigmoid(initial score + learning rate × Σ tree outputs).
type GradientBoostedClassifier struct {
	InitialScore float64     `json:"initial_score"`
	LearningRate float64     `json:"learning_rate"`
	Dims         int         `json:"dims"`
	Trees        []*treeNode `json:"trees"`
}

// BoostConfig holds the ensemble hyperparameters.
type BoostConfig struct {
	Estimators   int
	LearningRate float64
	MaxDepth     int
	MinLeaf      int
}

// DefaultBoostConfig matches the deployed model: 300 weak learners.
func DefaultBoostConfig() BoostConfig {
	return BoostConfig{
		Estimators:   300,
		LearningRate: 0.1,
		MaxDepth:     3,
		MinLeaf:      2,
	}
}

// FitBoostedClassifier fits the ensemble on scaled features and binary
// labels (0/1). Fitting is deterministic for a fixed input.
func FitBoostedClassifier(x [][]float64, y []int, cfg BoostConfig) (*GradientBoostedClassifier, error) {
	if len(x) == 0 || len(x) != len(y) {
		return nil, fmt.Errorf("fit classifier: %d rows vs %d labels", len(x), len(y))
	}

	n := len(x)
	var positives float64
	for _, label := range y {
		if label != 0 && label != 1 {
			return nil, fmt.Errorf("fit classifier: label %d is not binary", label)
		}
		positives += float64(label)
	}

	// Log-odds prior, clamped away from the degenerate extremes.
	p0 := clamp(positives/float64(n), 1e-6, 1-1e-6)
	model := &GradientBoostedClassifier{
		InitialScore: math.Log(p0 / (1 - p0)),
		LearningRate: cfg.LearningRate,
		Dims:         len(x[0]),
		Trees:        make([]*treeNode, 0, cfg.Estimators),
	}

	scores := make([]float64, n)
	for i := range scores {
		scores[i] = model.InitialScore
	}

	grad := make([]float64, n)
	hess := make([]float64, n)

	for t := 0; t < cfg.Estimators; t++ {
		for i := range x {
			p := sigmoid(scores[i])
			grad[i] = float64(y[i]) - p
			hess[i] = p * (1 - p)
		}

		tree := fitTree(x, grad, hess, cfg.MaxDepth, cfg.MinLeaf)
		model.Trees = append(model.Trees, tree)

		for i := range x {
			scores[i] += cfg.LearningRate * tree.predict(x[i])
		}
	}

	return model, nil
}

// PredictProbability returns the probability mass assigned to the positive
// (Safe) class for a single scaled feature vector.
func (m *GradientBoostedClassifier) PredictProbability(x []float64) (float64, error) {
	if len(x) != m.Dims {
		return 0, fmt.Errorf("predict: got %d features, model fitted on %d", len(x), m.Dims)
	}
	score := m.InitialScore
	for _, t := range m.Trees {
		score += m.LearningRate * t.predict(x)
	}
	return sigmoid(score), nil
}

// PredictLabel thresholds the probability at 0.5.
func (m *GradientBoostedClassifier) PredictLabel(x []float64) (int, error) {
	p, err := m.PredictProbability(x)
	if err != nil {
		return 0, err
	}
	if p >= 0.5 {
		return 1, nil
	}
	return 0, nil
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
