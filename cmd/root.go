package cmd

import (
	"github.com/soumikb/aquasense/internal/ml"
	"github.com/soumikb/aquasense/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "aquasense",
	Short: "Water quality decision support",
	Long:  "AquaSense — terminal app that assesses water samples against WHO thresholds and a trained classifier.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides AQUASENSE_DB env var)")
	rootCmd.PersistentFlags().String("artifacts", "", "Path to model artifacts file (overrides AQUASENSE_ARTIFACTS env var)")

	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then AQUASENSE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveArtifactsPath returns the model artifacts path using --artifacts
// flag, then AQUASENSE_ARTIFACTS env var, then the default XDG path.
func resolveArtifactsPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("artifacts"); p != "" {
		return p, nil
	}
	return ml.DefaultArtifactsPath()
}
