package ingest

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/carecost/internal/db"
	"github.com/gyeh/carecost/internal/directory"
	"github.com/gyeh/carecost/internal/model"
)

const copyBufferSize = 1024

// StageResult holds metrics from the copy phase.
type StageResult struct {
	RowsRead   int64
	RowsCopied int64
	Duration   time.Duration
}

// Stage streams rows from the directory file and COPY-loads them into
// directory.hospitals via a channel-backed CopyFromSource. Row numbers
// follow file order.
func Stage(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, pf *PreflightResult) (*StageResult, error) {
	start := time.Now()

	reader, err := directory.Open(pf.FilePath)
	if err != nil {
		return nil, fmt.Errorf("stage open: %w", err)
	}
	defer reader.Close()

	// Cancelling after the copy returns unblocks a producer whose consumer
	// has stopped reading.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ch := make(chan model.HospitalRecord, copyBufferSize)
	errCh := make(chan error, 1)

	var rowsRead int64

	go func() {
		defer close(ch)
		for {
			rec, readErr := reader.Next()
			if readErr == io.EOF {
				break
			}
			if readErr != nil {
				errCh <- fmt.Errorf("read %s at row %d: %w", reader.Format(), rowsRead+1, readErr)
				return
			}
			rowsRead++

			select {
			case ch <- rec:
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			}
		}
		errCh <- nil
	}()

	source := db.NewChannelSource(pf.BatchID, ch)
	rowsCopied, err := pool.CopyFrom(ctx,
		pgx.Identifier{"directory", "hospitals"},
		model.HospitalColumns(),
		source,
	)
	cancel()

	prodErr := <-errCh
	if err != nil {
		return nil, fmt.Errorf("stage copy: %w", err)
	}
	if prodErr != nil {
		return nil, fmt.Errorf("stage producer: %w", prodErr)
	}

	dur := time.Since(start)
	log.Info().
		Int64("rows_read", rowsRead).
		Int64("rows_copied", rowsCopied).
		Str("duration", dur.String()).
		Msg("copy complete")

	return &StageResult{
		RowsRead:   rowsRead,
		RowsCopied: rowsCopied,
		Duration:   dur,
	}, nil
}
