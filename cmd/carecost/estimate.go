package main

import (
	"context"
	"errors"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gyeh/carecost/internal/advise"
	"github.com/gyeh/carecost/internal/config"
	"github.com/gyeh/carecost/internal/costtable"
	"github.com/gyeh/carecost/internal/db"
	"github.com/gyeh/carecost/internal/directory"
	"github.com/gyeh/carecost/internal/exitcode"
	"github.com/gyeh/carecost/internal/logging"
	"github.com/gyeh/carecost/internal/session"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Run an interactive cost estimate and hospital recommendation",
	RunE:  runEstimate,
}

func init() {
	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)
	ctx := context.Background()

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(configExitCode(err))
	}

	table, err := cfg.CostTable()
	if err != nil {
		log.Error().Err(err).Str("path", cfg.CostTablePath).Msg("cost table invalid")
		os.Exit(exitcode.ValidationError)
	}

	var src directory.Source = directory.FileSource{Path: cfg.DirectoryPath}
	if cfg.FromDB {
		pool, err := db.NewPool(ctx, cfg.DSN)
		if err != nil {
			log.Error().Err(err).Msg("database connection failed")
			os.Exit(exitcode.DBConnError)
		}
		defer pool.Close()
		src = db.NewStore(pool)
	}

	err = advise.Run(ctx, log, advise.Params{
		In:        cmd.InOrStdin(),
		Out:       cmd.OutOrStdout(),
		Table:     table,
		Directory: src,
		ChartPath: cfg.ChartPath,
	})
	if err != nil {
		code := estimateExitCode(err)
		logFailure(log, err)
		os.Exit(code)
	}
	return nil
}

// configExitCode separates unreadable input files from bad settings.
func configExitCode(err error) int {
	if errors.Is(err, config.ErrUnreadable) {
		return exitcode.ValidationError
	}
	return exitcode.UsageError
}

// estimateExitCode maps a session failure to its exit code.
func estimateExitCode(err error) int {
	var mc *directory.MissingColumnsError
	var pe *advise.PhaseError
	switch {
	case errors.As(err, &mc):
		return exitcode.MissingColumns
	case errors.Is(err, session.ErrInvalidNumber):
		return exitcode.InvalidNumericInput
	case errors.Is(err, costtable.ErrUnknownTreatment):
		return exitcode.UnknownTreatment
	case errors.Is(err, costtable.ErrInvalidTier):
		return exitcode.InvalidHospitalType
	case errors.Is(err, session.ErrInputClosed):
		return exitcode.UsageError
	case errors.Is(err, db.ErrNoActiveBatch):
		return exitcode.ValidationError
	case errors.As(err, &pe) && pe.Phase == advise.PhaseLoad:
		return exitcode.ValidationError
	default:
		return exitcode.UsageError
	}
}

func logFailure(log zerolog.Logger, err error) {
	var pe *advise.PhaseError
	if errors.As(err, &pe) {
		log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("estimate failed")
		return
	}
	log.Error().Err(err).Msg("estimate failed")
}
