package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/seenimoa/finscope/internal/catalog"
	"github.com/seenimoa/finscope/pkg/models"
)

// --- Catalog Command ---

var catalogCmd = &cobra.Command{
	Use:   "catalog [id]",
	Short: "List the analysis catalog or show one analysis",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Default()
		if err != nil {
			return err
		}
		lang, _ := cmd.Flags().GetString("lang")
		out := cmd.OutOrStdout()

		if len(args) == 1 {
			d, err := cat.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s\n  name:      %s\n  category:  %s\n  scope:     %s (needs %d year(s))\n  direction: %s\n  inputs:    %s\n",
				d.ID, d.Name.In(models.Language(lang)), d.Category, d.Scope, d.RequiredYears(), d.Direction, strings.Join(d.Inputs, ", "))
			return nil
		}

		defs := cat.List()
		if c, _ := cmd.Flags().GetString("category"); c != "" {
			category := models.Category(c)
			if !category.Valid() {
				return fmt.Errorf("unknown category %q (one of %v)", c, models.Categories())
			}
			defs = cat.ByCategory(category)
		}

		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tCATEGORY\tSCOPE\tNAME")
		for _, d := range defs {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", d.ID, d.Category, d.Scope, d.Name.In(models.Language(lang)))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(out, "\n%d analyses\n", len(defs))
		return nil
	},
}

func init() {
	catalogCmd.Flags().String("category", "", "filter by category (classical_ratio, structural, cash_flow, advanced)")
	catalogCmd.Flags().String("lang", "en", "label language (en, ar)")
}
