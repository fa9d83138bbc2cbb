package cmd

import (
	"fmt"
	"os"

	"github.com/soumikb/aquasense/internal/analysis"
	"github.com/soumikb/aquasense/internal/app"
	"github.com/soumikb/aquasense/internal/insights"
	"github.com/soumikb/aquasense/internal/llm"
	"github.com/soumikb/aquasense/internal/ml"
	"github.com/soumikb/aquasense/internal/store"
	"github.com/soumikb/aquasense/internal/water"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	artifactPath, err := resolveArtifactsPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve artifacts path: %w", err)
	}

	thresholds, err := water.LoadThresholds()
	if err != nil {
		return err
	}

	eventRepo := st.EventRepo()
	opts := app.Options{
		EventRepo:   eventRepo,
		Analysis:    analysis.NewService(thresholds, artifactPath, eventRepo),
		ModelStatus: modelStatus(artifactPath),
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI advisories will be unavailable.")
	} else {
		opts.Insights = insights.NewService(provider, insights.DefaultConfig())
	}

	return app.Run(opts)
}

// modelStatus summarizes the trained model for the header.
func modelStatus(artifactPath string) string {
	a, err := ml.LoadArtifacts(artifactPath)
	if err != nil {
		return "no model"
	}
	runID := a.RunID
	if len(runID) > 8 {
		runID = runID[:8]
	}
	return "model " + runID
}
