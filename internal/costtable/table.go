// Package costtable holds the immutable treatment → tier → cost range table
// the estimator prices against.
package costtable

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gyeh/carecost/internal/model"
	"github.com/gyeh/carecost/internal/normalize"
)

var (
	ErrUnknownTreatment = errors.New("unknown treatment")
	ErrInvalidTier      = errors.New("invalid hospital type")
)

// DefaultCurrency is the symbol used when a table does not name one.
const DefaultCurrency = "₹"

// Entry prices one treatment across all tiers.
type Entry struct {
	Treatment string
	Ranges    map[model.Tier]model.CostRange
}

// Table is immutable after New; accessors return copies.
type Table struct {
	currency string
	order    []string
	ranges   map[string]map[model.Tier]model.CostRange
}

// New validates entries and builds a Table. Every entry must price every
// tier in model.AllTiers; treatment keys are canonicalised with normalize.Key.
func New(currency string, entries []Entry) (*Table, error) {
	if currency == "" {
		currency = DefaultCurrency
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("cost table has no treatments")
	}
	t := &Table{
		currency: currency,
		order:    make([]string, 0, len(entries)),
		ranges:   make(map[string]map[model.Tier]model.CostRange, len(entries)),
	}
	for _, e := range entries {
		key := normalize.Key(e.Treatment)
		if key == "" {
			return nil, fmt.Errorf("cost table entry with empty treatment name")
		}
		if _, dup := t.ranges[key]; dup {
			return nil, fmt.Errorf("duplicate treatment %q", key)
		}
		tiers := make(map[model.Tier]model.CostRange, len(model.AllTiers))
		for tier, r := range e.Ranges {
			if !tier.Valid() {
				return nil, fmt.Errorf("treatment %q: %w %q", key, ErrInvalidTier, tier)
			}
			if err := r.Validate(); err != nil {
				return nil, fmt.Errorf("treatment %q tier %s: %w", key, tier, err)
			}
			tiers[tier] = r
		}
		for _, tier := range model.AllTiers {
			if _, ok := tiers[tier]; !ok {
				return nil, fmt.Errorf("treatment %q: missing %s range", key, tier)
			}
		}
		t.order = append(t.order, key)
		t.ranges[key] = tiers
	}
	return t, nil
}

// Currency returns the symbol amounts are denominated in.
func (t *Table) Currency() string { return t.currency }

// Treatments returns the treatment keys in display order.
func (t *Table) Treatments() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Has reports whether treatment (in any case) is priced.
func (t *Table) Has(treatment string) bool {
	_, ok := t.ranges[normalize.Key(treatment)]
	return ok
}

// Lookup returns the range for a treatment and tier.
func (t *Table) Lookup(treatment string, tier model.Tier) (model.CostRange, error) {
	tiers, ok := t.ranges[normalize.Key(treatment)]
	if !ok {
		return model.CostRange{}, fmt.Errorf("%w %q", ErrUnknownTreatment, treatment)
	}
	if !tier.Valid() {
		return model.CostRange{}, fmt.Errorf("%w %q", ErrInvalidTier, tier)
	}
	return tiers[tier], nil
}

// TierAverage is the midpoint cost of one tier for a treatment.
type TierAverage struct {
	Tier    model.Tier
	Average decimal.Decimal
}

// Averages returns each tier's midpoint for treatment, in model.AllTiers order.
func (t *Table) Averages(treatment string) ([]TierAverage, error) {
	tiers, ok := t.ranges[normalize.Key(treatment)]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownTreatment, treatment)
	}
	out := make([]TierAverage, 0, len(model.AllTiers))
	for _, tier := range model.AllTiers {
		out = append(out, TierAverage{Tier: tier, Average: tiers[tier].Midpoint()})
	}
	return out, nil
}
