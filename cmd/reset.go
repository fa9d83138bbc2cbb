package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete stored events and model artifacts",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		artifactPath, err := resolveArtifactsPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve artifacts path: %w", err)
		}

		if !force {
			fmt.Println("This will delete:")
			fmt.Println("  " + dbPath)
			fmt.Println("  " + artifactPath)
			fmt.Println()
			fmt.Println("Run again with --force to confirm.")
			return nil
		}

		// WAL mode leaves sidecar files next to the database.
		for _, p := range []string{dbPath, dbPath + "-wal", dbPath + "-shm", artifactPath} {
			if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("remove %s: %w", p, err)
			}
		}

		fmt.Println("All local data removed.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip confirmation and delete immediately")
}
