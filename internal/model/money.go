package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CostRange is an inclusive [Min, Max] price band in the table's currency.
type CostRange struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// NewCostRange builds a range from whole currency units.
func NewCostRange(min, max int64) CostRange {
	return CostRange{Min: decimal.NewFromInt(min), Max: decimal.NewFromInt(max)}
}

var two = decimal.NewFromInt(2)

// Midpoint returns the average of the two bounds.
func (r CostRange) Midpoint() decimal.Decimal {
	return r.Min.Add(r.Max).Div(two)
}

// Validate checks that both bounds are non-negative and Min <= Max.
func (r CostRange) Validate() error {
	if r.Min.IsNegative() || r.Max.IsNegative() {
		return fmt.Errorf("negative bound in range %s-%s", r.Min, r.Max)
	}
	if r.Min.GreaterThan(r.Max) {
		return fmt.Errorf("min %s exceeds max %s", r.Min, r.Max)
	}
	return nil
}
