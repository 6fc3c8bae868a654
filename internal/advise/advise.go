// Package advise runs one estimate session end to end: load the directory,
// collect answers, validate, estimate, match hospitals and render.
package advise

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gyeh/carecost/internal/costtable"
	"github.com/gyeh/carecost/internal/directory"
	"github.com/gyeh/carecost/internal/estimate"
	"github.com/gyeh/carecost/internal/match"
	"github.com/gyeh/carecost/internal/report"
	"github.com/gyeh/carecost/internal/session"
)

// Session phases, in order.
const (
	PhaseLoad     = "load"
	PhaseInput    = "input"
	PhaseValidate = "validate"
	PhaseEstimate = "estimate"
	PhaseRender   = "render"
)

// PhaseError wraps an error with the phase where the session stopped.
type PhaseError struct {
	Phase string
	Err   error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PhaseError) Unwrap() error {
	return e.Err
}

// Params is what one session needs.
type Params struct {
	In        io.Reader
	Out       io.Writer
	Table     *costtable.Table
	Directory directory.Source
	// ChartPath, when set, also saves the tier chart as an image.
	ChartPath string
}

// Run executes a session. Every failure prints a user-facing message to
// p.Out first; nothing from later phases is rendered after it.
func Run(ctx context.Context, log zerolog.Logger, p Params) error {
	log = log.With().Str("session_id", uuid.NewString()).Logger()
	out := report.New(p.Out, p.Table.Currency())

	hospitals, err := p.Directory.Load(ctx)
	if err != nil {
		var mc *directory.MissingColumnsError
		if errors.As(err, &mc) {
			out.Fatal(fmt.Sprintf("Hospital directory is missing required columns: %s", strings.Join(mc.Columns, ", ")))
		} else {
			out.Fatal("Could not read the hospital directory.")
		}
		return &PhaseError{Phase: PhaseLoad, Err: err}
	}
	log.Debug().Int("hospitals", len(hospitals)).Msg("directory loaded")

	out.Banner()
	answers, err := session.NewPrompter(p.In, p.Out).Collect(p.Table.Treatments())
	if err != nil {
		if errors.Is(err, session.ErrInvalidNumber) {
			out.Fatal("Invalid numeric input. Please enter valid age and BMI.")
		} else {
			out.Fatal("Input ended before all questions were answered.")
		}
		return &PhaseError{Phase: PhaseInput, Err: err}
	}

	tier, err := session.Validate(answers, p.Table)
	if err != nil {
		switch {
		case errors.Is(err, costtable.ErrUnknownTreatment):
			out.Fatal(fmt.Sprintf("Unknown treatment '%s'. Available: %s",
				answers.Treatment, strings.Join(p.Table.Treatments(), ", ")))
		default:
			out.Fatal("Invalid hospital type. Choose public/private/specialty.")
		}
		return &PhaseError{Phase: PhaseValidate, Err: err}
	}

	est, err := estimate.Estimate(answers.Treatment, tier, answers.Profile, p.Table)
	if err != nil {
		out.Fatal("Could not compute an estimate.")
		return &PhaseError{Phase: PhaseEstimate, Err: err}
	}
	avgs, err := p.Table.Averages(answers.Treatment)
	if err != nil {
		out.Fatal("Could not compute an estimate.")
		return &PhaseError{Phase: PhaseEstimate, Err: err}
	}
	log.Info().
		Str("treatment", est.Treatment).
		Str("tier", string(est.Tier)).
		Str("estimate", est.PointEstimate.StringFixed(2)).
		Int("adjustments", len(est.Applied)).
		Msg("estimate computed")

	res := match.Match(hospitals, answers.Treatment, answers.City)
	log.Info().
		Int("matches", len(res.Hospitals)).
		Bool("fallback", res.UsedFallback).
		Msg("hospitals matched")

	out.Summary(answers.Name, answers.City, est)
	if res.UsedFallback {
		out.FallbackNotice(answers.City, answers.Treatment)
	}
	if err := out.Hospitals(res.Hospitals); err != nil {
		out.Fatal("Could not print the hospital list.")
		return &PhaseError{Phase: PhaseRender, Err: err}
	}
	out.Chart(answers.Treatment, avgs)
	if p.ChartPath != "" {
		if err := report.WriteChartImage(p.ChartPath, answers.Treatment, p.Table.Currency(), avgs); err != nil {
			out.Fatal("Could not save the cost chart.")
			return &PhaseError{Phase: PhaseRender, Err: err}
		}
		log.Info().Str("path", p.ChartPath).Msg("chart saved")
	}
	out.Completed()
	return nil
}
