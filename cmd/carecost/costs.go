package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gyeh/carecost/internal/costtable"
	"github.com/gyeh/carecost/internal/exitcode"
	"github.com/gyeh/carecost/internal/logging"
	"github.com/gyeh/carecost/internal/model"
	"github.com/gyeh/carecost/internal/normalize"
)

var costsCmd = &cobra.Command{
	Use:   "costs",
	Short: "Print the cost table in use",
	RunE:  runCosts,
}

func init() {
	rootCmd.AddCommand(costsCmd)
}

func runCosts(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	table, err := cfg.CostTable()
	if err != nil {
		log.Error().Err(err).Str("path", cfg.CostTablePath).Msg("cost table invalid")
		os.Exit(exitcode.ValidationError)
	}
	return printCosts(cmd.OutOrStdout(), table)
}

// printCosts writes one row per treatment with each tier's range.
func printCosts(out io.Writer, table *costtable.Table) error {
	fmt.Fprintf(out, "Currency: %s\n\n", table.Currency())

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprint(tw, "Treatment")
	for _, tier := range model.AllTiers {
		fmt.Fprint(tw, "\t"+normalize.Title(string(tier)))
	}
	fmt.Fprintln(tw)

	for _, treatment := range table.Treatments() {
		fmt.Fprint(tw, normalize.Title(treatment))
		for _, tier := range model.AllTiers {
			r, err := table.Lookup(treatment, tier)
			if err != nil {
				return err
			}
			fmt.Fprintf(tw, "\t%s – %s", normalize.Money("", r.Min, 0), normalize.Money("", r.Max, 0))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
