// finscope: financial statement analysis and peer benchmarking.
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/seenimoa/finscope/internal/config"
	"github.com/seenimoa/finscope/internal/logger"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Global config
var cfg *config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "finscope",
	Short: "finscope: financial statement analysis and peer benchmarking",
	Long: `finscope runs a catalog of financial ratios, structural, cash-flow and
advanced analyses over normalized financial statements, compares each result
with sector benchmarks and summarizes strengths, weaknesses and
recommendations per category.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
			cfg.Logging.Level = lvl
		}
		_, err = logger.Init(logger.Config{
			Level:   cfg.Logging.Level,
			Format:  cfg.Logging.Format,
			Tracing: cfg.Logging.Tracing,
		})
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return logger.Shutdown(ctx)
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(benchmarkCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statusCmd)
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "finscope %s\n", version)
		fmt.Fprintf(out, "  commit:  %s\n", commit)
		fmt.Fprintf(out, "  built:   %s\n", date)
	},
}

// --- Status Command ---

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show system status and configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "═══════════════════════════════════════")
		fmt.Fprintln(out, "  finscope: System Status")
		fmt.Fprintln(out, "═══════════════════════════════════════")
		fmt.Fprintf(out, "  Version:       %s (%s)\n", version, commit)
		fmt.Fprintln(out)

		eng, err := buildEngine(cfg, nil)
		if err != nil {
			return err
		}

		fmt.Fprintln(out, "  Configuration:")
		fmt.Fprintf(out, "    Analyses:      %d\n", eng.Catalog().Len())
		fmt.Fprintf(out, "    Workers:       %d (top %d per category)\n", cfg.Engine.Workers, cfg.Engine.TopK)
		t := cfg.Engine.Tiers
		fmt.Fprintf(out, "    Tiers:         %.0f / %.0f / %.0f / %.0f (±%.1f)\n",
			t.Excellent, t.VeryGood, t.Good, t.Acceptable, cfg.Engine.EqualTolerance)
		fmt.Fprintf(out, "    Levels:        %v\n", cfg.Engine.ComparisonLevels)
		benchDir := cfg.Benchmarks.Dir
		if benchDir == "" {
			benchDir = "(built-in default table)"
		}
		fmt.Fprintf(out, "    Benchmarks:    %s\n", benchDir)
		fmt.Fprintf(out, "    Store:         %s\n", cfg.Store.Driver)
		fmt.Fprintf(out, "    API Server:    %s:%d\n", cfg.API.Host, cfg.API.Port)
		fmt.Fprintln(out)

		fmt.Fprintln(out, "  Credentials:")
		for _, k := range config.CheckSecrets(cfg) {
			status := "not set"
			if k.IsSet {
				status = fmt.Sprintf("set (%s: %s)", k.Source, k.Masked)
			}
			fmt.Fprintf(out, "    %-25s %s\n", k.Name+":", status)
		}

		fmt.Fprintln(out, "═══════════════════════════════════════")
		return nil
	},
}
