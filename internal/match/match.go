// Package match recommends hospitals from the directory by treatment and city.
package match

import (
	"strings"

	"github.com/gyeh/carecost/internal/model"
	"github.com/gyeh/carecost/internal/normalize"
)

// MaxDisplay caps how many matches a report shows.
const MaxDisplay = 10

// Result is the outcome of one directory query.
type Result struct {
	Hospitals    []model.HospitalRecord
	UsedFallback bool
}

// Contains reports whether field matches query: case-insensitive substring
// containment, with an empty field never matching.
func Contains(field, query string) bool {
	field = strings.ToLower(field)
	if field == "" {
		return false
	}
	return strings.Contains(field, strings.ToLower(query))
}

// Match returns directory rows offering treatment in city, in directory
// order. When no row satisfies both, the city constraint is dropped and
// UsedFallback is set, even if the relaxed query is also empty.
func Match(directory []model.HospitalRecord, treatment, city string) Result {
	treatment = strings.ToLower(strings.TrimSpace(treatment))
	city = strings.ToLower(strings.TrimSpace(city))

	strict := filter(directory, func(r model.HospitalRecord) bool {
		return Contains(r.Treatments, treatment) && Contains(r.City, city)
	})
	if len(strict) > 0 {
		return Result{Hospitals: strict}
	}

	relaxed := filter(directory, func(r model.HospitalRecord) bool {
		return Contains(r.Treatments, treatment)
	})
	return Result{Hospitals: relaxed, UsedFallback: true}
}

func filter(rows []model.HospitalRecord, keep func(model.HospitalRecord) bool) []model.HospitalRecord {
	var out []model.HospitalRecord
	for _, r := range rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// Truncate returns at most MaxDisplay hospitals.
func Truncate(rows []model.HospitalRecord) []model.HospitalRecord {
	if len(rows) > MaxDisplay {
		return rows[:MaxDisplay]
	}
	return rows
}

// Label renders "Name (Tier)" with the tier title-cased, or just the name
// when the row has no tier.
func Label(r model.HospitalRecord) string {
	tier := strings.TrimSpace(string(r.Tier))
	if tier == "" {
		return r.Name
	}
	return r.Name + " (" + normalize.Title(tier) + ")"
}
