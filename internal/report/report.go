// Package report renders an estimate and its hospital recommendations to
// the console.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/gyeh/carecost/internal/match"
	"github.com/gyeh/carecost/internal/model"
	"github.com/gyeh/carecost/internal/normalize"
)

const rule = "============================================================"

// Presenter writes report sections to out, formatting money in currency.
type Presenter struct {
	out      io.Writer
	currency string
}

func New(out io.Writer, currency string) *Presenter {
	return &Presenter{out: out, currency: currency}
}

// Banner opens a session.
func (p *Presenter) Banner() {
	fmt.Fprintln(p.out, "\nMedical Cost Prediction & Hospital Recommendation")
}

// Fatal prints the user-facing message for an error that ends the run.
func (p *Presenter) Fatal(msg string) {
	fmt.Fprintln(p.out, msg)
}

// Summary prints the estimate block. The range shown is the unadjusted one.
func (p *Presenter) Summary(name, city string, est model.EstimateResult) {
	fmt.Fprintln(p.out, "\n"+rule)
	fmt.Fprintf(p.out, "Name: %s\n", name)
	fmt.Fprintf(p.out, "City: %s\n", normalize.Title(city))
	fmt.Fprintf(p.out, "Hospital Type: %s\n", normalize.Title(string(est.Tier)))
	fmt.Fprintf(p.out, "Estimated Cost: %s\n", normalize.Money(p.currency, est.PointEstimate, 2))
	for _, adj := range est.Applied {
		fmt.Fprintf(p.out, "  includes +%s (%s)\n", normalize.Money(p.currency, adj.Amount, 0), adj.Reason)
	}
	fmt.Fprintf(p.out, "Typical Cost Range: %s – %s\n",
		normalize.Money(p.currency, est.Range.Min, 0), normalize.Money(p.currency, est.Range.Max, 0))
	fmt.Fprintln(p.out, rule)
}

// FallbackNotice explains that no hospital in city offers treatment.
func (p *Presenter) FallbackNotice(city, treatment string) {
	fmt.Fprintf(p.out, "No hospitals found in %s for '%s'. Showing top hospitals that offer this treatment:\n",
		normalize.Title(city), normalize.Title(treatment))
}

// Hospitals prints up to match.MaxDisplay rows numbered from 1.
func (p *Presenter) Hospitals(rows []model.HospitalRecord) error {
	rows = match.Truncate(rows)
	if len(rows) == 0 {
		fmt.Fprintln(p.out, "No hospitals in the directory offer this treatment.")
		return nil
	}
	tw := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "No.\tHospital\tCity")
	for i, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", strconv.Itoa(i+1), match.Label(r), normalize.Title(r.City))
	}
	return tw.Flush()
}

// Completed closes a session.
func (p *Presenter) Completed() {
	fmt.Fprintln(p.out, "\nCompleted!")
}

func pad(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
