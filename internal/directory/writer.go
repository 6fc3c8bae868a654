package directory

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"
	"github.com/xuri/excelize/v2"

	"github.com/gyeh/carecost/internal/model"
)

// fileHeader is the column layout written by WriteFile.
var fileHeader = []string{"hospital name", "best_treatments", "city", "hospital type"}

// WriteFile writes records to path in the format its extension names.
func WriteFile(path string, records []model.HospitalRecord) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return encodeCSV(path, records)
	case ".xlsx", ".xlsm":
		return encodeXLSX(path, records)
	case ".parquet":
		return encodeParquet(path, records)
	default:
		return fmt.Errorf("unsupported directory format %q (want .xlsx, .csv or .parquet)", ext)
	}
}

func rowCells(r model.HospitalRecord) []string {
	return []string{r.Name, r.Treatments, r.City, string(r.Tier)}
}

func encodeCSV(path string, records []model.HospitalRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(fileHeader); err != nil {
		f.Close()
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range records {
		if err := w.Write(rowCells(r)); err != nil {
			f.Close()
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush csv: %w", err)
	}
	return f.Close()
}

func encodeXLSX(path string, records []model.HospitalRecord) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return fmt.Errorf("xlsx stream writer: %w", err)
	}
	row := func(n int, values []string) error {
		cell, err := excelize.CoordinatesToCellName(1, n)
		if err != nil {
			return err
		}
		out := make([]any, len(values))
		for i, v := range values {
			out[i] = v
		}
		return sw.SetRow(cell, out)
	}
	if err := row(1, fileHeader); err != nil {
		return fmt.Errorf("write xlsx header: %w", err)
	}
	for i, r := range records {
		if err := row(i+2, rowCells(r)); err != nil {
			return fmt.Errorf("write xlsx row %d: %w", i+1, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush xlsx: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save xlsx: %w", err)
	}
	return nil
}

func optionalCell(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func encodeParquet(path string, records []model.HospitalRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create parquet: %w", err)
	}
	rows := make([]model.DirectoryRow, len(records))
	for i, r := range records {
		rows[i] = model.DirectoryRow{
			HospitalName:   r.Name,
			BestTreatments: optionalCell(r.Treatments),
			City:           optionalCell(r.City),
			HospitalType:   optionalCell(string(r.Tier)),
		}
	}
	w := parquet.NewGenericWriter[model.DirectoryRow](f)
	if _, err := w.Write(rows); err != nil {
		f.Close()
		return fmt.Errorf("write parquet: %w", err)
	}
	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("close parquet writer: %w", err)
	}
	return f.Close()
}
