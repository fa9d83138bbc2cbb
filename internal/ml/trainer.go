package ml

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Training failure modes that must be reported instead of producing a
// degenerate model.
var (
	ErrInsufficientData = errors.New("not enough training rows after preprocessing")
	ErrSingleClass      = errors.New("training data contains a single class")
)

// TrainConfig holds the full training configuration.
type TrainConfig struct {
	Boost        BoostConfig
	TestFraction float64
	Seed         uint64
	MinRows      int
}

// DefaultTrainConfig uses an 80/20 split with a fixed seed.
func DefaultTrainConfig() TrainConfig {
	return TrainConfig{
		Boost:        DefaultBoostConfig(),
		TestFraction: 0.2,
		Seed:         42,
		MinRows:      10,
	}
}

// Train fits the scaler on the training split, fits the boosted classifier
// on the scaled training features, and evaluates on the held-out split. The
// returned Artifacts carry a fresh run ID; the caller persists them.
func Train(x [][]float64, y []int, featureNames []string, cfg TrainConfig) (*Artifacts, *Report, error) {
	if len(x) != len(y) {
		return nil, nil, fmt.Errorf("train: %d rows vs %d labels", len(x), len(y))
	}
	if len(x) < cfg.MinRows {
		return nil, nil, fmt.Errorf("%w: have %d, need at least %d", ErrInsufficientData, len(x), cfg.MinRows)
	}
	if err := checkClassDiversity(y); err != nil {
		return nil, nil, err
	}

	trainIdx, testIdx := SplitIndices(len(x), cfg.TestFraction, cfg.Seed)

	xTrain, yTrain := gather(x, y, trainIdx)
	xTest, yTest := gather(x, y, testIdx)

	// Both classes must also survive the split on the training side.
	if err := checkClassDiversity(yTrain); err != nil {
		return nil, nil, fmt.Errorf("training split: %w", err)
	}

	scaler, err := FitScaler(xTrain)
	if err != nil {
		return nil, nil, err
	}
	xTrainScaled, err := scaler.TransformAll(xTrain)
	if err != nil {
		return nil, nil, err
	}
	xTestScaled, err := scaler.TransformAll(xTest)
	if err != nil {
		return nil, nil, err
	}

	model, err := FitBoostedClassifier(xTrainScaled, yTrain, cfg.Boost)
	if err != nil {
		return nil, nil, err
	}

	yPred := make([]int, len(xTestScaled))
	for i, row := range xTestScaled {
		yPred[i], err = model.PredictLabel(row)
		if err != nil {
			return nil, nil, err
		}
	}
	report, err := BuildReport(yTest, yPred)
	if err != nil {
		return nil, nil, err
	}

	artifacts := &Artifacts{
		SchemaVersion: ArtifactsSchemaVersion,
		RunID:         uuid.NewString(),
		CreatedAt:     time.Now().UTC(),
		FeatureNames:  featureNames,
		Scaler:        scaler,
		Model:         model,
	}
	return artifacts, report, nil
}

func checkClassDiversity(y []int) error {
	seen := map[int]bool{}
	for _, label := range y {
		seen[label] = true
	}
	if len(seen) < 2 {
		return ErrSingleClass
	}
	return nil
}

func gather(x [][]float64, y []int, idx []int) ([][]float64, []int) {
	xs := make([][]float64, len(idx))
	ys := make([]int, len(idx))
	for k, i := range idx {
		xs[k] = x[i]
		ys[k] = y[i]
	}
	return xs, ys
}
