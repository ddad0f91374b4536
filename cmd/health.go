package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/intervet/internal/api"
	"github.com/abhisek/intervet/internal/config"
	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check backend availability",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if u, _ := cmd.Flags().GetString("backend"); u != "" {
			cfg.BackendURL = u
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		client := api.NewClient(cfg.BackendURL, nil)
		resp, err := client.Health(ctx)
		if err != nil {
			return fmt.Errorf("backend %s unreachable: %w", cfg.BackendURL, err)
		}

		fmt.Printf("backend  %s\nstatus   %s\ndb       %s\n", cfg.BackendURL, resp.Status, resp.DB)
		return nil
	},
}
