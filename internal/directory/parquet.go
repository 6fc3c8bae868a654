package directory

import (
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/carecost/internal/model"
)

const parquetBatchSize = 256

// ParquetReader streams directory rows from a Parquet file. Columns are
// located by the file's own names, so any spelling the header rules accept
// reads the same way.
type ParquetReader struct {
	file   *os.File
	reader *parquet.Reader
	idx    columnIndex
	width  int
	rows   []parquet.Row
	buf    []model.HospitalRecord
	pos    int
	eof    bool
}

func NewParquetReader(path string) (*ParquetReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open parquet file: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat parquet file: %w", err)
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open parquet: %w", err)
	}

	headers := columnNames(pf.Schema())
	idx, err := indexHeaders(headers)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &ParquetReader{
		file:   f,
		reader: parquet.NewReader(pf),
		idx:    idx,
		width:  len(headers),
		rows:   make([]parquet.Row, parquetBatchSize),
	}, nil
}

// columnNames returns the leaf column names in column-index order.
func columnNames(schema *parquet.Schema) []string {
	cols := schema.Columns()
	names := make([]string, len(cols))
	for i, path := range cols {
		if len(path) > 0 {
			names[i] = path[len(path)-1]
		}
	}
	return names
}

// NumRows returns the total number of rows in the Parquet file.
func (r *ParquetReader) NumRows() int64 {
	return r.reader.NumRows()
}

func (r *ParquetReader) Next() (model.HospitalRecord, error) {
	for r.pos >= len(r.buf) {
		if r.eof {
			return model.HospitalRecord{}, io.EOF
		}
		if err := r.fill(); err != nil {
			return model.HospitalRecord{}, err
		}
	}
	rec := r.buf[r.pos]
	r.pos++
	return rec, nil
}

// fill converts the next batch of rows. Row values may alias reader
// buffers, so cells are copied out before the next read.
func (r *ParquetReader) fill() error {
	n, err := r.reader.ReadRows(r.rows)
	if err == io.EOF {
		r.eof = true
	} else if err != nil {
		return fmt.Errorf("read parquet rows: %w", err)
	}

	r.buf, r.pos = r.buf[:0], 0
	for _, row := range r.rows[:n] {
		cells := make([]string, r.width)
		for _, v := range row {
			if c := v.Column(); c >= 0 && c < r.width && !v.IsNull() {
				cells[c] = v.String()
			}
		}
		r.buf = append(r.buf, r.idx.record(cells))
	}
	return nil
}

func (r *ParquetReader) Format() string { return "parquet" }

// Close releases all resources.
func (r *ParquetReader) Close() error {
	if err := r.reader.Close(); err != nil {
		r.file.Close()
		return err
	}
	return r.file.Close()
}
