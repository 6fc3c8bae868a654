package directory

import (
	"sort"

	"github.com/gyeh/carecost/internal/match"
	"github.com/gyeh/carecost/internal/model"
	"github.com/gyeh/carecost/internal/normalize"
)

// Stats summarises a loaded directory.
type Stats struct {
	Rows int
	// Tiers counts rows per normalised hospital type; "" counts rows with
	// none. Values outside public/private/specialty are kept as found.
	Tiers map[string]int
	// Cities is the number of distinct non-empty cities.
	Cities int
	// Coverage counts, for each treatment, the rows that would match it on
	// treatment alone.
	Coverage []TreatmentCoverage
}

type TreatmentCoverage struct {
	Treatment string
	Hospitals int
}

// Summarize computes Stats over rows for the given treatments, in the order
// given.
func Summarize(rows []model.HospitalRecord, treatments []string) Stats {
	s := Stats{Rows: len(rows), Tiers: make(map[string]int)}
	cities := make(map[string]struct{})
	for _, r := range rows {
		s.Tiers[normalize.Key(string(r.Tier))]++
		if c := normalize.Key(r.City); c != "" {
			cities[c] = struct{}{}
		}
	}
	s.Cities = len(cities)

	for _, t := range treatments {
		n := 0
		for _, r := range rows {
			if match.Contains(r.Treatments, t) {
				n++
			}
		}
		s.Coverage = append(s.Coverage, TreatmentCoverage{Treatment: t, Hospitals: n})
	}
	return s
}

// TierNames returns the keys of Tiers sorted, with known tiers first.
func (s Stats) TierNames() []string {
	rank := func(name string) int {
		for i, t := range model.AllTiers {
			if string(t) == name {
				return i
			}
		}
		return len(model.AllTiers)
	}
	names := make([]string, 0, len(s.Tiers))
	for name := range s.Tiers {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ri, rj := rank(names[i]), rank(names[j])
		if ri != rj {
			return ri < rj
		}
		return names[i] < names[j]
	})
	return names
}
