package ingest

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/carecost/internal/directory"
	"github.com/gyeh/carecost/internal/normalize"
	embedsql "github.com/gyeh/carecost/internal/sql"
)

// PreflightResult holds all context resolved during the preflight phase.
type PreflightResult struct {
	// FilePath is the path passed to Preflight, stored as-is.
	FilePath string
	// FileSHA256 is the hex-encoded SHA-256 digest of the file.
	FileSHA256 string
	// Format is the directory reader format (csv, xlsx, parquet).
	Format string
	// BatchID identifies this load. When AlreadyLoaded is set it is the id of
	// the existing batch instead.
	BatchID uuid.UUID
	// AlreadyLoaded is true when a batch with the same digest exists and
	// force mode is off.
	AlreadyLoaded bool
	// Replaces is the batch a forced reload supersedes, or uuid.Nil. It is
	// removed only once the new batch is finalized.
	Replaces uuid.UUID
	// ReplacedActive is true when Replaces is the active batch.
	ReplacedActive bool
}

// Preflight hashes the file, validates its header, and registers a new
// batch. A file whose digest is already loaded is skipped unless force is
// set, in which case the old batch is marked for replacement.
func Preflight(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, filePath string, force bool) (*PreflightResult, error) {
	start := time.Now()

	sha, err := normalize.FileHash(filePath)
	if err != nil {
		return nil, fmt.Errorf("preflight hash: %w", err)
	}

	reader, err := directory.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("preflight open: %w", err)
	}
	format := reader.Format()
	reader.Close()

	res := &PreflightResult{FilePath: filePath, FileSHA256: sha, Format: format}

	var existing uuid.UUID
	var active bool
	err = pool.QueryRow(ctx, embedsql.LookupBatchBySHA, sha).Scan(&existing, &active)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
	case err != nil:
		return nil, fmt.Errorf("preflight lookup batch: %w", err)
	case !force:
		res.BatchID = existing
		res.AlreadyLoaded = true
		return res, nil
	default:
		res.Replaces = existing
		res.ReplacedActive = active
		log.Info().Str("batch_id", existing.String()).Bool("was_active", active).Msg("previous batch will be replaced")
	}

	res.BatchID = uuid.New()
	if _, err := pool.Exec(ctx, embedsql.RegisterBatch, res.BatchID, filepath.Base(filePath), sha); err != nil {
		return nil, fmt.Errorf("preflight register batch: %w", err)
	}

	log.Info().
		Str("file", filepath.Base(filePath)).
		Str("format", format).
		Str("sha256", sha).
		Dur("duration", time.Since(start)).
		Msg("preflight complete")

	return res, nil
}
