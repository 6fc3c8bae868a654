// Package ingest loads a hospital directory file into Postgres as one batch.
package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/carecost/internal/config"
	"github.com/gyeh/carecost/internal/model"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Run executes the load pipeline: preflight → stage → finalize. A batch
// that fails after registration is removed again.
func Run(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, cfg *config.Config) (*model.LoadSummary, error) {
	totalStart := time.Now()

	log.Info().Str("file", cfg.FilePath).Msg("starting preflight")
	pf, err := Preflight(ctx, pool, log, cfg.FilePath, cfg.Force)
	if err != nil {
		return nil, &PipelineError{Phase: "preflight", Err: err}
	}

	if pf.AlreadyLoaded {
		log.Info().
			Str("batch_id", pf.BatchID.String()).
			Str("sha256", pf.FileSHA256).
			Msg("file already loaded, skipping (use --force to reload)")
		return &model.LoadSummary{
			FilePath:      pf.FilePath,
			FileSHA256:    pf.FileSHA256,
			BatchID:       pf.BatchID.String(),
			AlreadyLoaded: true,
			DurationTotal: time.Since(totalStart),
		}, nil
	}

	log.Info().Str("batch_id", pf.BatchID.String()).Msg("starting copy")
	stageResult, err := Stage(ctx, pool, log, pf)
	if err != nil {
		discard(pool, log, pf)
		return nil, &PipelineError{Phase: "stage", Err: err}
	}

	activate := cfg.Activate || pf.ReplacedActive
	if err := Finalize(ctx, pool, log, pf.BatchID, pf.Replaces, stageResult.RowsCopied, activate); err != nil {
		discard(pool, log, pf)
		return nil, &PipelineError{Phase: "finalize", Err: err}
	}

	summary := &model.LoadSummary{
		FilePath:      pf.FilePath,
		FileSHA256:    pf.FileSHA256,
		BatchID:       pf.BatchID.String(),
		Activated:     activate,
		RowsRead:      stageResult.RowsRead,
		RowsCopied:    stageResult.RowsCopied,
		DurationCopy:  stageResult.Duration,
		DurationTotal: time.Since(totalStart),
	}

	log.Info().
		Int64("rows_read", summary.RowsRead).
		Int64("rows_copied", summary.RowsCopied).
		Bool("activated", summary.Activated).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("directory load complete")

	return summary, nil
}

// discard removes a failed batch. It runs on a fresh context so a cancelled
// load still cleans up.
func discard(pool *pgxpool.Pool, log zerolog.Logger, pf *PreflightResult) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := Cleanup(ctx, pool, log, pf.BatchID); err != nil {
		log.Warn().Err(err).Str("batch_id", pf.BatchID.String()).Msg("batch cleanup failed (non-fatal)")
	}
}
