package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/carecost/internal/db"
	"github.com/gyeh/carecost/internal/directory"
	"github.com/gyeh/carecost/internal/exitcode"
	"github.com/gyeh/carecost/internal/logging"
	"github.com/gyeh/carecost/internal/normalize"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Dry-run validation and stats for a hospital directory (no writes)",
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)
	ctx := context.Background()
	out := cmd.OutOrStdout()

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(configExitCode(err))
	}

	table, err := cfg.CostTable()
	if err != nil {
		log.Error().Err(err).Str("path", cfg.CostTablePath).Msg("cost table invalid")
		os.Exit(exitcode.ValidationError)
	}

	fmt.Fprintln(out, "=== carecost inspect ===")

	var src directory.Source
	if cfg.FromDB {
		pool, err := db.NewPool(ctx, cfg.DSN)
		if err != nil {
			log.Error().Err(err).Msg("database connection failed")
			os.Exit(exitcode.DBConnError)
		}
		defer pool.Close()
		store := db.NewStore(pool)
		batch, err := store.ActiveBatch(ctx)
		if err != nil {
			log.Error().Err(err).Msg("no directory to inspect")
			os.Exit(exitcode.ValidationError)
		}
		fmt.Fprintf(out, "Source:     postgres (batch %s)\n", batch)
		src = store
	} else {
		sha, err := normalize.FileHash(cfg.DirectoryPath)
		if err != nil {
			log.Error().Err(err).Msg("failed to hash file")
			os.Exit(exitcode.ValidationError)
		}
		stat, err := os.Stat(cfg.DirectoryPath)
		if err != nil {
			log.Error().Err(err).Msg("failed to stat file")
			os.Exit(exitcode.ValidationError)
		}
		fmt.Fprintf(out, "File:       %s\n", cfg.DirectoryPath)
		fmt.Fprintf(out, "SHA-256:    %s\n", sha)
		fmt.Fprintf(out, "Size:       %d bytes\n", stat.Size())
		src = directory.FileSource{Path: cfg.DirectoryPath}
	}

	rows, err := src.Load(ctx)
	if err != nil {
		var mc *directory.MissingColumnsError
		if errors.As(err, &mc) {
			log.Error().Strs("missing", mc.Columns).Msg("schema validation failed")
			os.Exit(exitcode.MissingColumns)
		}
		log.Error().Err(err).Msg("failed to read directory")
		os.Exit(exitcode.ValidationError)
	}

	stats := directory.Summarize(rows, table.Treatments())
	fmt.Fprintf(out, "Total rows: %d\n", stats.Rows)
	fmt.Fprintf(out, "Cities:     %d\n", stats.Cities)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Hospital type distribution:")
	for _, name := range stats.TierNames() {
		label := name
		if label == "" {
			label = "(none)"
		}
		fmt.Fprintf(out, "  %-16s %d\n", label, stats.Tiers[name])
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Treatment coverage:")
	for _, c := range stats.Coverage {
		fmt.Fprintf(out, "  %-18s %d hospitals\n", c.Treatment, c.Hospitals)
	}
	fmt.Fprintln(out, "\nSchema validation: OK")

	return nil
}
