package db

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/gyeh/carecost/internal/model"
)

// ChannelSource implements pgx.CopyFromSource by reading HospitalRecords
// from a channel, numbering them in arrival order under one batch.
type ChannelSource struct {
	ch      <-chan model.HospitalRecord
	batchID uuid.UUID
	rowNum  int64
	current model.HospitalRecord
}

// NewChannelSource creates a CopyFromSource backed by a channel.
func NewChannelSource(batchID uuid.UUID, ch <-chan model.HospitalRecord) *ChannelSource {
	return &ChannelSource{ch: ch, batchID: batchID}
}

// Next advances to the next row. Returns false when the channel is closed.
func (s *ChannelSource) Next() bool {
	row, ok := <-s.ch
	if !ok {
		return false
	}
	s.rowNum++
	s.current = row
	return true
}

// Values returns the current row's values in model.HospitalColumns order.
func (s *ChannelSource) Values() ([]any, error) {
	return []any{
		s.batchID,
		s.rowNum,
		s.current.Name,
		s.current.Treatments,
		s.current.City,
		string(s.current.Tier),
	}, nil
}

func (s *ChannelSource) Err() error {
	return nil
}

var _ pgx.CopyFromSource = (*ChannelSource)(nil)
