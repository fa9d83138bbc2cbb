package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/soumikb/aquasense/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show analysis and training statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		repo := s.EventRepo()

		analyses, err := repo.RecentAnalyses(ctx, store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query analyses: %w", err)
		}

		counts := map[string]int{}
		for _, a := range analyses {
			counts[a.Decision]++
		}

		fmt.Println("Samples Analyzed")
		fmt.Println(strings.Repeat("─", 40))
		fmt.Printf("%-12s  %6d\n", "total", len(analyses))
		for _, d := range []string{"safe", "treatable", "unsafe"} {
			fmt.Printf("%-12s  %6d\n", d, counts[d])
		}

		training, err := repo.LatestTraining(ctx)
		if err != nil {
			return fmt.Errorf("query training: %w", err)
		}

		fmt.Println()
		fmt.Println("Latest Training Run")
		fmt.Println(strings.Repeat("─", 40))
		if training == nil {
			fmt.Println("none recorded")
			return nil
		}
		fmt.Printf("%-12s  %s\n", "run", training.RunID)
		fmt.Printf("%-12s  %s\n", "when", training.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("%-12s  %d of %d rows used\n", "data", training.RowsUsed, training.RowsTotal)
		fmt.Printf("%-12s  %d safe / %d unsafe\n", "classes", training.SafeCount, training.UnsafeCount)
		fmt.Printf("%-12s  %.2f on %d held-out rows\n", "accuracy", training.Accuracy, training.TestSize)
		fmt.Printf("%-12s  %s\n", "artifacts", training.ArtifactPath)

		return nil
	},
}
