package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/seenimoa/finscope/internal/engine"
	"github.com/seenimoa/finscope/pkg/models"
)

// analyzeInput is the JSON document read by the analyze command. A bare
// array of statements is also accepted.
type analyzeInput struct {
	Statements []models.FinancialStatement `json:"statements"`
	engine.RunOptions
}

func decodeInput(data []byte) (analyzeInput, error) {
	var in analyzeInput
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		err := json.Unmarshal(trimmed, &in.Statements)
		return in, err
	}
	err := json.Unmarshal(trimmed, &in)
	return in, err
}

// applyFlags overrides input options with the flags the user set.
func applyFlags(cmd *cobra.Command, opts *engine.RunOptions) {
	f := cmd.Flags()
	if f.Changed("sector") {
		opts.Sector, _ = f.GetString("sector")
	}
	if f.Changed("legal-entity") {
		opts.LegalEntity, _ = f.GetString("legal-entity")
	}
	if f.Changed("level") {
		opts.ComparisonLevel, _ = f.GetString("level")
	}
	if f.Changed("years") {
		opts.YearsCount, _ = f.GetInt("years")
	}
	if f.Changed("analyses") {
		opts.Analyses, _ = f.GetStringSlice("analyses")
	}
	if f.Changed("lang") {
		lang, _ := f.GetString("lang")
		opts.Language = models.Language(lang)
	}
}

// --- Analyze Command ---

var analyzeCmd = &cobra.Command{
	Use:   "analyze [statements.json]",
	Short: "Analyze a company's financial statements",
	Long: `Run the analysis catalog over a JSON file of normalized statements and
compare the results with sector benchmarks. Use "-" to read from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error
		if args[0] == "-" {
			data, err = io.ReadAll(cmd.InOrStdin())
		} else {
			data, err = os.ReadFile(args[0])
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		in, err := decodeInput(data)
		if err != nil {
			return fmt.Errorf("decode input: %w", err)
		}
		applyFlags(cmd, &in.RunOptions)
		if in.ComparisonLevel == "" && len(cfg.Engine.ComparisonLevels) > 0 {
			in.ComparisonLevel = cfg.Engine.ComparisonLevels[0]
		}
		if in.Language == "" {
			in.Language = models.Language(cfg.Engine.Language)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		var sink engine.ReportSink
		if save, _ := cmd.Flags().GetBool("save"); save {
			st, err := buildStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer st.Close()
			sink = st
		}

		eng, err := buildEngine(cfg, sink)
		if err != nil {
			return err
		}
		report, err := eng.Run(ctx, in.Statements, in.RunOptions)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "json":
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		case "text":
			return printReport(cmd.OutOrStdout(), report)
		default:
			return fmt.Errorf("unknown format %q (use text or json)", format)
		}
	},
}

func init() {
	analyzeCmd.Flags().String("sector", "", "sector of the company (overrides the input file)")
	analyzeCmd.Flags().String("legal-entity", "", "legal entity type")
	analyzeCmd.Flags().String("level", "", "comparison level (default: first configured level)")
	analyzeCmd.Flags().Int("years", 0, "analyze only the most recent N years")
	analyzeCmd.Flags().StringSlice("analyses", nil, "analysis ids to run (default: whole catalog)")
	analyzeCmd.Flags().String("lang", "", "label language (en, ar)")
	analyzeCmd.Flags().String("format", "text", "output format (text, json)")
	analyzeCmd.Flags().Bool("save", false, "persist the report to the configured store")
}

// printReport writes a human-readable summary of report.
func printReport(w io.Writer, r *models.AnalysisReport) error {
	lang := r.Meta.Language
	m := r.Meta

	fmt.Fprintf(w, "%s  %v  (%s / %s / %s)\n", m.Company, m.Years, m.Sector, m.LegalEntity, m.ComparisonLevel)
	fmt.Fprintf(w, "run %s  benchmarks %s [%s]", m.RunID, m.BenchmarkKey, m.BenchmarkSource)
	if m.LowConfidence {
		fmt.Fprint(w, " low confidence")
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "analyses: %d attempted, %d succeeded, %d skipped, %d failed\n\n",
		m.Attempted, m.Succeeded, m.Skipped, m.Failed)

	fmt.Fprintf(w, "Overall performance: %s\n", orDash(string(r.Executive.Performance)))
	fmt.Fprintf(w, "Strengths:  %v\n", r.Executive.Strengths)
	fmt.Fprintf(w, "Weaknesses: %v\n\n", r.Executive.Weaknesses)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tPERFORMANCE\tOK\tSKIPPED\tFAILED")
	for _, c := range r.Categories {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\n", c.Name.In(lang), orDash(string(c.Performance)),
			c.Counts.Succeeded, c.Counts.Skipped, c.Counts.Failed)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ANALYSIS\tYEAR\tVALUE\tBENCHMARK\tDIFF %\tTIER")
	for _, e := range r.Evaluations() {
		fmt.Fprintf(tw, "%s\t%d\t%.4g\t%.4g\t%+.2f\t%s\n", e.Name.In(lang), e.Year, e.Value, e.Average, e.PercentDifference, e.Tier)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(r.Executive.Recommendations) > 0 {
		fmt.Fprintln(w, "\nRecommendations:")
		for _, rec := range r.Executive.Recommendations {
			fmt.Fprintf(w, "  - %s\n", rec.In(lang))
		}
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
