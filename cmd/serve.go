package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/abhisek/intervet/internal/bank"
	"github.com/abhisek/intervet/internal/config"
	"github.com/abhisek/intervet/internal/llm"
	"github.com/abhisek/intervet/internal/server"
	"github.com/abhisek/intervet/internal/store"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the assessment backend locally",
	Long:  "Serve the five assessment endpoints (parse, users, responses, select_questions, generate_report) from a local question bank, so the client works without the hosted backend.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		bankDir, _ := cmd.Flags().GetString("bank")
		b, err := bank.LoadDir(bankDir)
		if err != nil {
			return fmt.Errorf("load question bank from %s: %w", bankDir, err)
		}

		// LLM calls made by the server are logged to the same local
		// event store the client uses.
		var eventRepo store.EventRepo
		dbPath, err := resolveDBPath(cmd, cfg.DBPath)
		if err == nil {
			var st *store.Store
			st, err = store.Open(dbPath)
			if err == nil {
				defer st.Close()
				eventRepo, err = st.EventRepo()
			}
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM request log unavailable:", err)
		}

		var provider llm.Provider
		llmCfg, llmErr := llm.DiscoverConfig()
		switch {
		case llmErr == nil:
			provider, err = llm.NewProvider(cmd.Context(), llmCfg, eventRepo)
			if err != nil {
				return fmt.Errorf("configure LLM provider: %w", err)
			}
			fmt.Println("LLM provider:", llmCfg.Provider)
		case errors.Is(llmErr, llm.ErrNoProvider):
			fmt.Println("No LLM provider configured; resume parsing and report narratives fall back to local heuristics.")
		default:
			return fmt.Errorf("configure LLM provider: %w", llmErr)
		}

		srv := server.New(b, provider)

		addr, _ := cmd.Flags().GetString("addr")
		httpSrv := &http.Server{
			Addr:              addr,
			Handler:           srv.Router(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		fmt.Println("Listening on", addr)
		return httpSrv.ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8000", "Listen address")
	serveCmd.Flags().String("bank", "bank", "Directory holding aptitude.txt, reasoning.txt, coding.txt")
}
