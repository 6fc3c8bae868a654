// Package session runs the line-based prompt protocol that collects one
// patient's answers, and validates them against the cost table.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gyeh/carecost/internal/costtable"
	"github.com/gyeh/carecost/internal/model"
	"github.com/gyeh/carecost/internal/normalize"
)

var (
	ErrInvalidNumber = errors.New("invalid numeric input")
	ErrInputClosed   = errors.New("input closed before all answers were given")
)

// InputError reports the prompt whose answer could not be used.
type InputError struct {
	Field string
	Value string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Field, e.Value, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// Answers is everything one session collects. Treatment and HospitalType
// are canonicalised but not yet validated; see Validate.
type Answers struct {
	Name         string
	Profile      model.PatientProfile
	City         string
	Treatment    string
	HospitalType string
}

// Prompter writes prompts to out and reads one answer per line from in.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

func (p *Prompter) ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("read answer: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// Collect asks every question in order. Age and BMI are parsed as soon as
// they are answered; a bad value stops the session before the next prompt.
// treatments is the list shown before the treatment prompt.
func (p *Prompter) Collect(treatments []string) (*Answers, error) {
	var a Answers
	var err error

	if a.Name, err = p.ask("Enter your name: "); err != nil {
		return nil, err
	}

	raw, err := p.ask("Enter your age: ")
	if err != nil {
		return nil, err
	}
	if a.Profile.Age, err = strconv.Atoi(raw); err != nil {
		return nil, &InputError{Field: "age", Value: raw, Err: ErrInvalidNumber}
	}

	if raw, err = p.ask("Enter your BMI: "); err != nil {
		return nil, err
	}
	if a.Profile.BMI, err = strconv.ParseFloat(raw, 64); err != nil {
		return nil, &InputError{Field: "bmi", Value: raw, Err: ErrInvalidNumber}
	}

	if a.Profile.Gender, err = p.ask("Enter your gender (Male/Female/Other): "); err != nil {
		return nil, err
	}
	if raw, err = p.ask("Are you a smoker? (yes/no): "); err != nil {
		return nil, err
	}
	a.Profile.Smoker = strings.ToLower(raw) == "yes"

	if raw, err = p.ask("Enter your region (north/south/east/west): "); err != nil {
		return nil, err
	}
	a.Profile.Region = strings.ToLower(raw)

	if raw, err = p.ask("Enter your city: "); err != nil {
		return nil, err
	}
	a.City = strings.ToLower(raw)

	fmt.Fprintln(p.out, "\nAvailable Treatments:")
	for _, t := range treatments {
		fmt.Fprintln(p.out, "-", t)
	}
	if raw, err = p.ask("\nSelect treatment: "); err != nil {
		return nil, err
	}
	a.Treatment = normalize.Key(raw)

	if raw, err = p.ask("Select hospital type (public/private/specialty): "); err != nil {
		return nil, err
	}
	a.HospitalType = normalize.Key(raw)

	return &a, nil
}

// Validate checks the treatment against table, then the hospital type, and
// returns the parsed tier. Errors wrap costtable.ErrUnknownTreatment or
// costtable.ErrInvalidTier.
func Validate(a *Answers, table *costtable.Table) (model.Tier, error) {
	if !table.Has(a.Treatment) {
		return "", &InputError{Field: "treatment", Value: a.Treatment, Err: costtable.ErrUnknownTreatment}
	}
	tier, ok := model.ParseTier(a.HospitalType)
	if !ok {
		return "", &InputError{Field: "hospital type", Value: a.HospitalType, Err: costtable.ErrInvalidTier}
	}
	return tier, nil
}
