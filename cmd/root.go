package cmd

import (
	"github.com/abhisek/intervet/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "intervet",
	Short: "Resume screening and skills assessment in the terminal",
	Long:  "Intervet — upload a resume, take a timed 30-question skills test, and get an AI-written assessment report.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides INTERVET_DB env var)")
	rootCmd.PersistentFlags().String("backend", "", "Backend base URL (overrides INTERVET_BACKEND_URL env var)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the configured INTERVET_DB value, then the default
// XDG path.
func resolveDBPath(cmd *cobra.Command, configured string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if configured != "" {
		return configured, store.EnsureDir(configured)
	}
	return store.DefaultDBPath()
}
