package model

import "time"

// LoadSummary captures metrics from a single directory load into Postgres.
type LoadSummary struct {
	FilePath      string
	FileSHA256    string
	BatchID       string
	AlreadyLoaded bool
	Activated     bool
	RowsRead      int64
	RowsCopied    int64
	DurationCopy  time.Duration
	DurationTotal time.Duration
}
