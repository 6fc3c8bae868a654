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
	"github.com/gyeh/carecost/internal/ingest"
	"github.com/gyeh/carecost/internal/logging"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load a hospital directory file into Postgres",
	RunE:  runLoad,
}

func init() {
	f := loadCmd.Flags()
	f.String("file", "", "Hospital directory file (.xlsx, .csv, .parquet) (required)")
	f.Bool("activate", false, "Make this batch the directory that estimate --from-db reads")
	f.Bool("force", false, "Reload even if the file SHA already exists")
	_ = loadCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)
	ctx := context.Background()

	if err := cfg.ValidateLoad(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(configExitCode(err))
	}

	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	summary, err := ingest.Run(ctx, pool, log, cfg)
	if err != nil {
		var mc *directory.MissingColumnsError
		var pe *ingest.PipelineError
		switch {
		case errors.As(err, &mc):
			log.Error().Strs("missing", mc.Columns).Msg("load failed")
			os.Exit(exitcode.MissingColumns)
		case errors.As(err, &pe):
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("load failed")
			if pe.Phase == "preflight" {
				os.Exit(exitcode.ValidationError)
			}
			os.Exit(exitcode.LoadError)
		}
		log.Error().Err(err).Msg("load failed")
		os.Exit(exitcode.LoadError)
	}

	out := cmd.OutOrStdout()
	if summary.AlreadyLoaded {
		fmt.Fprintf(out, "Already loaded as batch %s (use --force to reload)\n", summary.BatchID)
		return nil
	}
	fmt.Fprintf(out, "Load complete: %d rows in batch %s (%.1fs)\n",
		summary.RowsCopied, summary.BatchID, summary.DurationTotal.Seconds())
	if summary.Activated {
		fmt.Fprintln(out, "Batch is now the active hospital directory.")
	}
	return nil
}
