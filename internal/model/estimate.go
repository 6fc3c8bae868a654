package model

import "github.com/shopspring/decimal"

// Adjustment is one additive surcharge applied to a point estimate.
type Adjustment struct {
	Reason string
	Amount decimal.Decimal
}

// EstimateResult is derived per session and never stored.
// Range is the unadjusted base range; only PointEstimate includes Adjustment.
type EstimateResult struct {
	Treatment     string
	Tier          Tier
	PointEstimate decimal.Decimal
	Adjustment    decimal.Decimal
	Applied       []Adjustment
	Range         CostRange
}
