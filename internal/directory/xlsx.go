package directory

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/gyeh/carecost/internal/model"
)

// XLSXReader streams the first worksheet of a spreadsheet.
type XLSXReader struct {
	file *excelize.File
	rows *excelize.Rows
	idx  columnIndex
}

func NewXLSXReader(path string) (*XLSXReader, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		f.Close()
		return nil, fmt.Errorf("spreadsheet %s has no worksheets", path)
	}
	rows, err := f.Rows(sheets[0])
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("read worksheet %q: %w", sheets[0], err)
	}

	if !rows.Next() {
		rows.Close()
		f.Close()
		return nil, fmt.Errorf("worksheet %q has no header row", sheets[0])
	}
	headers, err := rows.Columns()
	if err != nil {
		rows.Close()
		f.Close()
		return nil, fmt.Errorf("read header row: %w", err)
	}
	idx, err := indexHeaders(headers)
	if err != nil {
		rows.Close()
		f.Close()
		return nil, err
	}

	return &XLSXReader{file: f, rows: rows, idx: idx}, nil
}

func (r *XLSXReader) Next() (model.HospitalRecord, error) {
	for r.rows.Next() {
		cells, err := r.rows.Columns()
		if err != nil {
			return model.HospitalRecord{}, fmt.Errorf("read spreadsheet row: %w", err)
		}
		if blank(cells) {
			continue
		}
		return r.idx.record(cells), nil
	}
	if err := r.rows.Error(); err != nil {
		return model.HospitalRecord{}, fmt.Errorf("read spreadsheet: %w", err)
	}
	return model.HospitalRecord{}, io.EOF
}

func (r *XLSXReader) Format() string { return "xlsx" }

func (r *XLSXReader) Close() error {
	if err := r.rows.Close(); err != nil {
		r.file.Close()
		return err
	}
	return r.file.Close()
}
