package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/seenimoa/finscope/internal/benchmark"
)

// --- Benchmark Command ---

var benchmarkCmd = &cobra.Command{
	Use:   "benchmark",
	Short: "Inspect benchmark tables",
}

var benchmarkResolveCmd = &cobra.Command{
	Use:   "resolve [sector]",
	Short: "Show which benchmark table a peer group resolves to",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver, err := buildResolver(cfg)
		if err != nil {
			return err
		}

		entity, _ := cmd.Flags().GetString("legal-entity")
		level, _ := cmd.Flags().GetString("level")
		if level == "" && len(cfg.Engine.ComparisonLevels) > 0 {
			level = cfg.Engine.ComparisonLevels[0]
		}
		key := benchmark.Key{Sector: args[0], LegalEntity: entity, Level: level}

		set, err := resolver.Resolve(cmd.Context(), key)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(set)
		}

		fmt.Fprintf(out, "requested:      %s\n", key.Normalize())
		fmt.Fprintf(out, "resolved:       %s\n", set.Key)
		fmt.Fprintf(out, "stage:          %s\n", set.Source)
		fmt.Fprintf(out, "low confidence: %v\n", set.LowConfidence)
		fmt.Fprintf(out, "analyses:       %d\n", set.Len())

		if show, _ := cmd.Flags().GetBool("entries"); show {
			ids := make([]string, 0, set.Len())
			for id := range set.Entries {
				ids = append(ids, id)
			}
			sort.Strings(ids)
			for _, id := range ids {
				e := set.Entries[id]
				src := "table"
				if e.Fallback {
					src = "default"
				}
				fmt.Fprintf(out, "  %-40s %10.4g  peers=%d  %s\n", id, e.Average, e.PeerCount, src)
			}
		}
		return nil
	},
}

func init() {
	benchmarkResolveCmd.Flags().String("legal-entity", "", "legal entity type")
	benchmarkResolveCmd.Flags().String("level", "", "comparison level (default: first configured level)")
	benchmarkResolveCmd.Flags().Bool("entries", false, "list every benchmark entry")
	benchmarkResolveCmd.Flags().Bool("json", false, "print the resolved table as JSON")
	benchmarkCmd.AddCommand(benchmarkResolveCmd)
}
