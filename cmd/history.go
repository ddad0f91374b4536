package cmd

import (
	"fmt"

	"github.com/abhisek/intervet/internal/config"
	"github.com/abhisek/intervet/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past completed attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		dbPath, err := resolveDBPath(cmd, cfg.DBPath)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		repo, err := st.EventRepo()
		if err != nil {
			return fmt.Errorf("open event repo: %w", err)
		}

		limit, _ := cmd.Flags().GetInt("limit")
		attempts, err := repo.ListAttempts(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("list attempts: %w", err)
		}

		if len(attempts) == 0 {
			fmt.Println("No completed attempts yet.")
			return nil
		}

		fmt.Printf("%-19s  %-20s  %7s  %8s  %-22s  %6s\n",
			"WHEN", "CANDIDATE", "SCORE", "ACCURACY", "CONSISTENCY", "TIME")
		for _, a := range attempts {
			name := a.CandidateName
			if name == "" {
				name = "(unknown)"
			}
			fmt.Printf("%-19s  %-20.20s  %3d/%-3d  %7d%%  %-22s  %3dm%02ds\n",
				a.Finished.Format("2006-01-02 15:04"),
				name,
				a.CorrectAnswers, a.QuestionsServed,
				a.AccuracyPct,
				a.Consistency,
				a.DurationSecs/60, a.DurationSecs%60,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 0, "Maximum number of attempts to show (0 = all)")
}
