package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/soumikb/aquasense/internal/dataset"
	"github.com/soumikb/aquasense/internal/ml"
	"github.com/soumikb/aquasense/internal/store"
	"github.com/soumikb/aquasense/internal/water"
	"github.com/spf13/cobra"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the water quality classifier from a CSV dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		dataPath, _ := cmd.Flags().GetString("data")
		if dataPath == "" {
			return fmt.Errorf("--data is required")
		}

		thresholds, err := water.LoadThresholds()
		if err != nil {
			return err
		}

		rows, err := dataset.LoadFile(dataPath)
		if err != nil {
			return fmt.Errorf("load dataset: %w", err)
		}

		samples := dataset.Preprocess(rows)
		labels := dataset.LabelAll(samples, thresholds)

		x := make([][]float64, len(samples))
		y := make([]int, len(samples))
		var safeCount, unsafeCount int
		for i, s := range samples {
			x[i] = s.Measurement.Features()
			y[i] = int(labels[i])
			if labels[i] == dataset.Safe {
				safeCount++
			} else {
				unsafeCount++
			}
		}

		fmt.Printf("Loaded %d rows, %d usable after preprocessing (%d safe / %d unsafe)\n",
			len(rows), len(samples), safeCount, unsafeCount)

		start := time.Now()
		artifacts, report, err := ml.Train(x, y, water.FeatureNames(), ml.DefaultTrainConfig())
		if err != nil {
			return fmt.Errorf("train: %w", err)
		}
		elapsed := time.Since(start)

		fmt.Println()
		fmt.Print(report.Format())
		fmt.Println()

		artifactPath, err := resolveArtifactsPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve artifacts path: %w", err)
		}
		if err := artifacts.Save(artifactPath); err != nil {
			return fmt.Errorf("save artifacts: %w", err)
		}
		fmt.Printf("Saved model %s to %s (%.1fs)\n", artifacts.RunID, artifactPath, elapsed.Seconds())

		return recordTraining(cmd, store.TrainingEventData{
			RunID:        artifacts.RunID,
			RowsTotal:    len(rows),
			RowsUsed:     len(samples),
			SafeCount:    safeCount,
			UnsafeCount:  unsafeCount,
			Accuracy:     report.Accuracy,
			TestSize:     report.TestSize,
			ArtifactPath: artifactPath,
			DurationMs:   elapsed.Milliseconds(),
		})
	},
}

// recordTraining appends the training event. A store failure is reported but
// does not undo a training run that already saved its artifacts.
func recordTraining(cmd *cobra.Command, data store.TrainingEventData) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	if err := st.EventRepo().AppendTraining(context.Background(), data); err != nil {
		return fmt.Errorf("record training event: %w", err)
	}
	return nil
}

func init() {
	trainCmd.Flags().StringP("data", "d", "", "Path to the training CSV file")
}
