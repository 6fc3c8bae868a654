package main

import (
	"github.com/spf13/cobra"

	"github.com/gyeh/carecost/internal/config"
)

var (
	cfg        *config.Config
	configFile string
)

var rootCmd = &cobra.Command{
	Use:   "carecost",
	Short: "Medical cost estimator and hospital recommender",
	Long: "Estimates a treatment's cost from a cost table, adjusts it for the patient's risk factors, " +
		"and recommends hospitals from a directory file or a Postgres-loaded directory.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(cmd.Flags(), configFile)
		if err != nil {
			return err
		}
		cfg = c
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "YAML config file")
	pf.String("directory", "", "Hospital directory file (.xlsx, .csv, .parquet)")
	pf.Bool("from-db", false, "Read the hospital directory from Postgres (active batch)")
	pf.String("dsn", "", "Postgres connection string (or set DATABASE_URL)")
	pf.String("cost-table", "", "YAML cost table (default: built-in table)")
	pf.String("log-format", "text", "Log format: text or json")
	pf.String("log-level", "info", "Log level: debug, info, warn or error")
	pf.String("chart-out", "", "Also save the cost chart image to this path (.png, .svg, .pdf)")
}
