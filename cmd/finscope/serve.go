package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/seenimoa/finscope/api"
)

// --- Serve Command (API Server) ---

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if port, _ := cmd.Flags().GetInt("port"); port > 0 {
			cfg.API.Port = port
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		st, err := buildStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		eng, err := buildEngine(cfg, st)
		if err != nil {
			return err
		}

		srv := api.NewServer(cfg, eng, st)
		srv.SetVersion(version)

		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		slog.Info("starting finscope API server", "addr", addr, "store", cfg.Store.Driver, "analyses", eng.Catalog().Len())
		return srv.ListenAndServe(ctx, addr)
	},
}

func init() {
	serveCmd.Flags().Int("port", 0, "listen port (overrides config)")
}
