package directory

import (
	"fmt"
	"strings"

	"github.com/gyeh/carecost/internal/model"
	"github.com/gyeh/carecost/internal/normalize"
)

// MissingColumnsError reports required directory columns absent from a file.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Columns, ", "))
}

// columnIndex maps canonical column names to their position in a header row.
type columnIndex map[string]int

// indexHeaders normalises a header row and checks that every required
// column is present. All missing columns are reported together.
func indexHeaders(headers []string) (columnIndex, error) {
	idx := make(columnIndex)
	for i, h := range headers {
		name, ok := model.CanonicalColumn(normalize.Header(h))
		if !ok {
			continue
		}
		if _, seen := idx[name]; !seen {
			idx[name] = i
		}
	}

	var missing []string
	for _, c := range model.RequiredColumns {
		if _, ok := idx[c.Name]; !ok {
			missing = append(missing, c.Name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}
	return idx, nil
}

// record builds a HospitalRecord from one row of cells. Short rows yield
// empty fields.
func (idx columnIndex) record(cells []string) model.HospitalRecord {
	get := func(col string) string {
		i := idx[col]
		if i >= len(cells) {
			return ""
		}
		return normalize.Cell(cells[i])
	}
	return model.HospitalRecord{
		Name:       get("hospital name"),
		Treatments: get("best_treatments"),
		City:       get("city"),
		Tier:       model.Tier(get("hospital type")),
	}
}
