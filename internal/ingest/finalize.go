package ingest

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	embedsql "github.com/gyeh/carecost/internal/sql"
)

// Finalize records the row count, removes the batch it replaces (if any)
// and, when activate is set, makes the batch the only active one. All of it
// happens in one transaction, so a failure leaves the previous directory in
// place.
func Finalize(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, batchID, replaces uuid.UUID, rows int64, activate bool) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin finalize: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, embedsql.FinishBatch, batchID, rows); err != nil {
		return fmt.Errorf("finish batch: %w", err)
	}

	if replaces != uuid.Nil {
		if _, err := tx.Exec(ctx, embedsql.DeleteBatch, replaces); err != nil {
			return fmt.Errorf("delete replaced batch: %w", err)
		}
		log.Info().Str("batch_id", replaces.String()).Msg("replaced batch removed")
	}

	if activate {
		tag, err := tx.Exec(ctx, embedsql.DeactivateOtherBatches, batchID)
		if err != nil {
			return fmt.Errorf("deactivate other batches: %w", err)
		}
		log.Info().Int64("deactivated", tag.RowsAffected()).Msg("older batches deactivated")

		if _, err := tx.Exec(ctx, embedsql.ActivateBatch, batchID); err != nil {
			return fmt.Errorf("activate batch: %w", err)
		}
		log.Info().Str("batch_id", batchID.String()).Msg("batch activated")
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit finalize: %w", err)
	}
	return nil
}
