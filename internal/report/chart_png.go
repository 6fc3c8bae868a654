package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/gyeh/carecost/internal/costtable"
	"github.com/gyeh/carecost/internal/normalize"
)

// WriteChartImage saves the tier comparison as an image. The format follows
// the extension of path (.png, .svg, .pdf, ...).
func WriteChartImage(path, treatment, currency string, avgs []costtable.TierAverage) error {
	p := plot.New()
	p.Title.Text = "Average Cost Comparison for " + normalize.Title(treatment)
	p.X.Label.Text = "Hospital Type"
	p.Y.Label.Text = fmt.Sprintf("Cost (%s)", currency)

	values := make(plotter.Values, len(avgs))
	names := make([]string, len(avgs))
	for i, a := range avgs {
		values[i] = a.Average.InexactFloat64()
		names[i] = string(a.Tier)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return fmt.Errorf("build bar chart: %w", err)
	}
	bars.LineStyle.Width = vg.Length(0)

	grid := plotter.NewGrid()
	grid.Vertical.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	grid.Horizontal.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(grid, bars)
	p.NominalX(names...)

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("save chart %s: %w", path, err)
	}
	return nil
}
