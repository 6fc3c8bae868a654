package advise

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gyeh/carecost/internal/costtable"
	"github.com/gyeh/carecost/internal/directory"
	"github.com/gyeh/carecost/internal/model"
	"github.com/gyeh/carecost/internal/session"
)

type sliceSource []model.HospitalRecord

func (s sliceSource) Load(context.Context) ([]model.HospitalRecord, error) {
	return s, nil
}

type failingSource struct{ err error }

func (s failingSource) Load(context.Context) ([]model.HospitalRecord, error) {
	return nil, s.err
}

var hospitals = sliceSource{
	{Name: "Smile Dental", Treatments: "Dental Care, Skin Allergy", City: "Pune", Tier: model.TierPrivate},
	{Name: "City Clinic", Treatments: "fever", City: "Pune", Tier: model.TierPublic},
	{Name: "Tooth Fairy", Treatments: "dental care", City: "Mumbai", Tier: model.TierSpecialty},
}

func answers(lines ...string) io.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func run(t *testing.T, src directory.Source, in io.Reader, chart string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := Run(context.Background(), zerolog.Nop(), Params{
		In:        in,
		Out:       &out,
		Table:     costtable.Default(),
		Directory: src,
		ChartPath: chart,
	})
	return out.String(), err
}

func TestRun_SmokerDentalPrivate(t *testing.T) {
	out, err := run(t, hospitals,
		answers("Asha", "34", "24.5", "Female", "YES", "west", "pune", "Dental Care", "Private"), "")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, want := range []string{
		"Name: Asha",
		"City: Pune",
		"Hospital Type: Private",
		"Estimated Cost: ₹3,250.00",
		"Typical Cost Range: ₹2,000 – ₹2,500",
		"Smile Dental (Private)",
		"Average Cost Comparison for Dental Care",
		"Completed!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "Tooth Fairy") {
		t.Error("hospital from another city listed without fallback")
	}
	if strings.Contains(out, "No hospitals found") {
		t.Error("unexpected fallback notice")
	}
}

func TestRun_FallbackNotice(t *testing.T) {
	out, err := run(t, hospitals,
		answers("Ravi", "40", "22", "Male", "no", "north", "delhi", "dental care", "public"), "")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "No hospitals found in Delhi for 'Dental Care'") {
		t.Errorf("missing fallback notice\n%s", out)
	}
	if !strings.Contains(out, "Smile Dental") || !strings.Contains(out, "Tooth Fairy") {
		t.Errorf("fallback should list every dental hospital\n%s", out)
	}
}

func TestRun_InvalidAgeStopsBeforeBMI(t *testing.T) {
	out, err := run(t, hospitals, answers("Asha", "thirty"), "")
	var pe *PhaseError
	if !errors.As(err, &pe) || pe.Phase != PhaseInput {
		t.Fatalf("expected input PhaseError, got %v", err)
	}
	if !errors.Is(err, session.ErrInvalidNumber) {
		t.Errorf("expected ErrInvalidNumber, got %v", err)
	}
	if strings.Contains(out, "BMI") {
		t.Errorf("bmi prompted after bad age\n%s", out)
	}
	if !strings.Contains(out, "Invalid numeric input") {
		t.Errorf("missing user message\n%s", out)
	}
}

func TestRun_UnknownTreatment(t *testing.T) {
	out, err := run(t, hospitals,
		answers("Asha", "30", "20", "F", "no", "west", "pune", "acupuncture", "banana"), "")
	if !errors.Is(err, costtable.ErrUnknownTreatment) {
		t.Fatalf("expected ErrUnknownTreatment, got %v", err)
	}
	if !strings.Contains(out, "Unknown treatment 'acupuncture'") {
		t.Errorf("missing user message\n%s", out)
	}
	if strings.Contains(out, "Estimated Cost") {
		t.Error("estimate rendered after validation failure")
	}
}

func TestRun_InvalidHospitalType(t *testing.T) {
	out, err := run(t, hospitals,
		answers("Asha", "30", "20", "F", "no", "west", "pune", "fever", "clinic"), "")
	if !errors.Is(err, costtable.ErrInvalidTier) {
		t.Fatalf("expected ErrInvalidTier, got %v", err)
	}
	if strings.Contains(out, "Estimated Cost") || strings.Contains(out, "Completed!") {
		t.Errorf("partial output after invalid hospital type\n%s", out)
	}
}

func TestRun_MissingColumns(t *testing.T) {
	src := failingSource{err: &directory.MissingColumnsError{Columns: []string{"city", "hospital type"}}}
	out, err := run(t, src, answers(), "")
	var pe *PhaseError
	if !errors.As(err, &pe) || pe.Phase != PhaseLoad {
		t.Fatalf("expected load PhaseError, got %v", err)
	}
	if !strings.Contains(out, "city, hospital type") {
		t.Errorf("message should name missing columns\n%s", out)
	}
	if strings.Contains(out, "Enter your name") {
		t.Error("prompted after directory failure")
	}
}

func TestRun_InputClosed(t *testing.T) {
	_, err := run(t, hospitals, answers("Asha", "30"), "")
	if !errors.Is(err, session.ErrInputClosed) {
		t.Errorf("expected ErrInputClosed, got %v", err)
	}
}

func TestRun_WritesChartImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")
	if _, err := run(t, hospitals,
		answers("Asha", "30", "20", "F", "no", "west", "pune", "fever", "public"), path); err != nil {
		t.Fatalf("run: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("chart not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("chart file is empty")
	}
}

// tableFailWriter rejects the hospital table's first header cell and
// accepts everything else.
type tableFailWriter struct {
	bytes.Buffer
}

func (w *tableFailWriter) Write(p []byte) (int, error) {
	if string(p) == "No." {
		return 0, errors.New("write refused")
	}
	return w.Buffer.Write(p)
}

func TestRun_HospitalTableFailure(t *testing.T) {
	var out tableFailWriter
	err := Run(context.Background(), zerolog.Nop(), Params{
		In:        answers("Asha", "30", "20", "F", "no", "west", "pune", "fever", "public"),
		Out:       &out,
		Table:     costtable.Default(),
		Directory: hospitals,
	})
	var pe *PhaseError
	if !errors.As(err, &pe) || pe.Phase != PhaseRender {
		t.Fatalf("expected render PhaseError, got %v", err)
	}
	s := out.String()
	if !strings.Contains(s, "Could not print the hospital list.") {
		t.Errorf("missing user message\n%s", s)
	}
	if strings.Contains(s, "Completed!") || strings.Contains(s, "Average Cost Comparison") {
		t.Errorf("output continued after failure\n%s", s)
	}
}
