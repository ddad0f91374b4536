package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/intervet/internal/api"
	"github.com/abhisek/intervet/internal/app"
	"github.com/abhisek/intervet/internal/config"
	"github.com/abhisek/intervet/internal/store"
	"github.com/spf13/cobra"
)

// runApp loads config, opens the local store, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if u, _ := cmd.Flags().GetString("backend"); u != "" {
		cfg.BackendURL = u
	}

	opts := app.Options{
		Gateway: api.NewClient(cfg.BackendURL, nil),
	}

	// The local history store is best-effort; the assessment flow
	// works without it.
	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err == nil {
		var st *store.Store
		st, err = store.Open(dbPath)
		if err == nil {
			defer st.Close()
			repo, repoErr := st.EventRepo()
			if repoErr == nil {
				opts.EventRepo = repo
			} else {
				err = repoErr
			}
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "local history unavailable:", err)
	}

	return app.Run(opts)
}
