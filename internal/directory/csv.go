package directory

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/gyeh/carecost/internal/model"
)

// CSVReader streams a comma-separated directory file.
type CSVReader struct {
	file   *os.File
	csv    *csv.Reader
	idx    columnIndex
	rowNum int64
}

func NewCSVReader(path string) (*CSVReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	reader := csv.NewReader(bufio.NewReader(file))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("read header row: %w", err)
	}
	idx, err := indexHeaders(headers)
	if err != nil {
		file.Close()
		return nil, err
	}

	return &CSVReader{file: file, csv: reader, idx: idx, rowNum: 1}, nil
}

func (r *CSVReader) Next() (model.HospitalRecord, error) {
	for {
		row, err := r.csv.Read()
		if err != nil {
			return model.HospitalRecord{}, r.wrap(err)
		}
		r.rowNum++
		if blank(row) {
			continue
		}
		return r.idx.record(row), nil
	}
}

func (r *CSVReader) wrap(err error) error {
	if pe, ok := err.(*csv.ParseError); ok {
		return fmt.Errorf("csv row %d: %w", pe.Line, pe)
	}
	return err
}

func (r *CSVReader) Format() string { return "csv" }

func (r *CSVReader) Close() error { return r.file.Close() }

func blank(row []string) bool {
	for _, c := range row {
		if c != "" {
			return false
		}
	}
	return true
}
