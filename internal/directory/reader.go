// Package directory reads hospital directory files (xlsx, csv, parquet).
package directory

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gyeh/carecost/internal/model"
)

// Reader streams hospital rows. Next returns io.EOF after the last row.
type Reader interface {
	Next() (model.HospitalRecord, error)
	Format() string
	Close() error
}

// Source yields a whole directory in its original row order.
type Source interface {
	Load(ctx context.Context) ([]model.HospitalRecord, error)
}

// Open opens path with the reader matching its extension and validates the
// header. A file lacking required columns fails with *MissingColumnsError.
func Open(path string) (Reader, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return NewCSVReader(path)
	case ".xlsx", ".xlsm":
		return NewXLSXReader(path)
	case ".parquet":
		return NewParquetReader(path)
	default:
		return nil, fmt.Errorf("unsupported directory format %q (want .xlsx, .csv or .parquet)", ext)
	}
}

// ReadAll drains r.
func ReadAll(r Reader) ([]model.HospitalRecord, error) {
	var out []model.HospitalRecord
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
}

// FileSource loads a directory file on demand.
type FileSource struct {
	Path string
}

func (s FileSource) Load(ctx context.Context) ([]model.HospitalRecord, error) {
	r, err := Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return ReadAll(r)
}
