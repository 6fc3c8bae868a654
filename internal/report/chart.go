package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/gyeh/carecost/internal/costtable"
	"github.com/gyeh/carecost/internal/normalize"
)

const barWidth = 40

// Chart prints a horizontal bar chart of each tier's average cost, scaled
// so the most expensive tier spans barWidth cells.
func (p *Presenter) Chart(treatment string, avgs []costtable.TierAverage) {
	fmt.Fprintf(p.out, "\nAverage Cost Comparison for %s\n", normalize.Title(treatment))

	peak := decimal.Zero
	labelWidth := 0
	for _, a := range avgs {
		if a.Average.GreaterThan(peak) {
			peak = a.Average
		}
		if n := len(normalize.Title(string(a.Tier))); n > labelWidth {
			labelWidth = n
		}
	}

	for _, a := range avgs {
		cells := 0
		if peak.IsPositive() {
			cells = int(a.Average.Mul(decimal.NewFromInt(barWidth)).Div(peak).Round(0).IntPart())
		}
		fmt.Fprintf(p.out, "%s | %s %s\n",
			pad(normalize.Title(string(a.Tier)), labelWidth),
			pad(strings.Repeat("█", cells), barWidth),
			normalize.Money(p.currency, a.Average, 2))
	}
	fmt.Fprintf(p.out, "%s   Hospital Type vs Cost (%s)\n", strings.Repeat(" ", labelWidth), p.currency)
}
