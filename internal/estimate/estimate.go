// Package estimate computes a point cost estimate for a treatment from the
// cost table and a patient profile.
package estimate

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gyeh/carecost/internal/costtable"
	"github.com/gyeh/carecost/internal/model"
	"github.com/gyeh/carecost/internal/normalize"
)

// rule is one additive surcharge and the profile condition that triggers it.
type rule struct {
	reason string
	amount decimal.Decimal
	when   func(model.PatientProfile) bool
}

var rules = []rule{
	{reason: "smoker", amount: decimal.NewFromInt(1000), when: func(p model.PatientProfile) bool { return p.Smoker }},
	{reason: "bmi over 30", amount: decimal.NewFromInt(500), when: func(p model.PatientProfile) bool { return p.BMI > 30 }},
	{reason: "age over 60", amount: decimal.NewFromInt(1000), when: func(p model.PatientProfile) bool { return p.Age > 60 }},
}

// Estimate prices treatment at tier for profile. The point estimate is the
// midpoint of the base range plus every triggered adjustment; the returned
// Range is the base range, unadjusted.
func Estimate(treatment string, tier model.Tier, profile model.PatientProfile, table *costtable.Table) (model.EstimateResult, error) {
	key := normalize.Key(treatment)
	base, err := table.Lookup(key, tier)
	if err != nil {
		return model.EstimateResult{}, fmt.Errorf("estimate: %w", err)
	}

	res := model.EstimateResult{
		Treatment:  key,
		Tier:       tier,
		Adjustment: decimal.Zero,
		Range:      base,
	}
	for _, r := range rules {
		if r.when(profile) {
			res.Applied = append(res.Applied, model.Adjustment{Reason: r.reason, Amount: r.amount})
			res.Adjustment = res.Adjustment.Add(r.amount)
		}
	}
	res.PointEstimate = base.Midpoint().Add(res.Adjustment)
	return res, nil
}
