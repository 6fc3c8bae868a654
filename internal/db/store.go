package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gyeh/carecost/internal/model"
	embedsql "github.com/gyeh/carecost/internal/sql"
)

// ErrNoActiveBatch means no directory load has been activated yet.
var ErrNoActiveBatch = errors.New("no active hospital directory batch; run `carecost load --activate`")

// Store reads the hospital directory from Postgres. It satisfies
// directory.Source.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// ActiveBatch returns the id of the batch estimates read from.
func (s *Store) ActiveBatch(ctx context.Context) (uuid.UUID, error) {
	var id uuid.UUID
	err := s.pool.QueryRow(ctx, embedsql.ActiveBatch).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, ErrNoActiveBatch
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("query active batch: %w", err)
	}
	return id, nil
}

// Load returns the active batch's hospitals in source file order.
func (s *Store) Load(ctx context.Context) ([]model.HospitalRecord, error) {
	batchID, err := s.ActiveBatch(ctx)
	if err != nil {
		return nil, err
	}
	return s.LoadBatch(ctx, batchID)
}

// LoadBatch returns one batch's hospitals in source file order.
func (s *Store) LoadBatch(ctx context.Context, batchID uuid.UUID) ([]model.HospitalRecord, error) {
	rows, err := s.pool.Query(ctx, embedsql.SelectHospitals, batchID)
	if err != nil {
		return nil, fmt.Errorf("query hospitals: %w", err)
	}
	defer rows.Close()

	var out []model.HospitalRecord
	for rows.Next() {
		var r model.HospitalRecord
		var tier string
		if err := rows.Scan(&r.Name, &r.Treatments, &r.City, &tier); err != nil {
			return nil, fmt.Errorf("scan hospital: %w", err)
		}
		r.Tier = model.Tier(tier)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate hospitals: %w", err)
	}
	return out, nil
}
