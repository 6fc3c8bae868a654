package costtable

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/gyeh/carecost/internal/model"
)

func TestDefault_FullyPopulated(t *testing.T) {
	tbl := Default()
	if got := len(tbl.Treatments()); got != 8 {
		t.Fatalf("expected 8 treatments, got %d", got)
	}
	for _, tr := range tbl.Treatments() {
		for _, tier := range model.AllTiers {
			if _, err := tbl.Lookup(tr, tier); err != nil {
				t.Errorf("Lookup(%q, %s): %v", tr, tier, err)
			}
		}
	}
	if tbl.Currency() != "₹" {
		t.Errorf("currency = %q", tbl.Currency())
	}
}

func TestLookup_DentalPrivate(t *testing.T) {
	r, err := Default().Lookup("Dental Care", model.TierPrivate)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if !r.Min.Equal(decimal.NewFromInt(2000)) || !r.Max.Equal(decimal.NewFromInt(2500)) {
		t.Errorf("range = %s-%s, want 2000-2500", r.Min, r.Max)
	}
}

func TestLookup_Errors(t *testing.T) {
	tbl := Default()
	if _, err := tbl.Lookup("acupuncture", model.TierPublic); !errors.Is(err, ErrUnknownTreatment) {
		t.Errorf("expected ErrUnknownTreatment, got %v", err)
	}
	if _, err := tbl.Lookup("cardiac", model.Tier("premium")); !errors.Is(err, ErrInvalidTier) {
		t.Errorf("expected ErrInvalidTier, got %v", err)
	}
}

func TestTreatments_ReturnsCopy(t *testing.T) {
	tbl := Default()
	keys := tbl.Treatments()
	keys[0] = "mutated"
	if tbl.Treatments()[0] != "cold/flu" {
		t.Error("Treatments exposed internal slice")
	}
}

func TestNew_RejectsPartialEntry(t *testing.T) {
	_, err := New("", []Entry{{
		Treatment: "x-ray",
		Ranges: map[model.Tier]model.CostRange{
			model.TierPublic:  model.NewCostRange(1, 2),
			model.TierPrivate: model.NewCostRange(3, 4),
		},
	}})
	if err == nil {
		t.Fatal("expected error for missing specialty range")
	}
}

func TestNew_RejectsBadRanges(t *testing.T) {
	for name, r := range map[string]model.CostRange{
		"inverted": model.NewCostRange(10, 5),
		"negative": model.NewCostRange(-1, 5),
	} {
		e := entry("x-ray", [2]int64{1, 2}, [2]int64{3, 4}, [2]int64{5, 6})
		e.Ranges[model.TierPrivate] = r
		if _, err := New("", []Entry{e}); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestNew_RejectsDuplicates(t *testing.T) {
	a := entry("Fever", [2]int64{1, 2}, [2]int64{3, 4}, [2]int64{5, 6})
	b := entry("fever ", [2]int64{1, 2}, [2]int64{3, 4}, [2]int64{5, 6})
	if _, err := New("", []Entry{a, b}); err == nil {
		t.Fatal("expected duplicate error")
	}
}

func TestAverages(t *testing.T) {
	avgs, err := Default().Averages("dental care")
	if err != nil {
		t.Fatalf("Averages: %v", err)
	}
	want := []int64{450, 2250, 4500}
	if len(avgs) != len(want) {
		t.Fatalf("got %d averages", len(avgs))
	}
	for i, a := range avgs {
		if a.Tier != model.AllTiers[i] {
			t.Errorf("avg[%d] tier = %s", i, a.Tier)
		}
		if !a.Average.Equal(decimal.NewFromInt(want[i])) {
			t.Errorf("avg[%d] = %s, want %d", i, a.Average, want[i])
		}
	}
}

func TestLoadFile_Valid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "costs.yaml")
	doc := `currency: "$"
treatments:
  - name: X-Ray
    public: [10, 20]
    private: [30, 40.5]
    specialty: [50, 60]
  - name: mri
    public: [100, 200]
    private: [300, 400]
    specialty: [500, 600]
`
	os.WriteFile(path, []byte(doc), 0644)

	tbl, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if tbl.Currency() != "$" {
		t.Errorf("currency = %q", tbl.Currency())
	}
	if got := tbl.Treatments(); len(got) != 2 || got[0] != "x-ray" || got[1] != "mri" {
		t.Errorf("treatments = %v", got)
	}
	r, err := tbl.Lookup("x-ray", model.TierPrivate)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if !r.Max.Equal(decimal.RequireFromString("40.5")) {
		t.Errorf("max = %s", r.Max)
	}
}

func TestLoadFile_UnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "costs.yaml")
	os.WriteFile(path, []byte("treatments:\n  - name: mri\n    premium: [1, 2]\n"), 0644)
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestLoadFile_BadBounds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "costs.yaml")
	os.WriteFile(path, []byte("treatments:\n  - name: mri\n    public: [1]\n    private: [1, 2]\n    specialty: [1, 2]\n"), 0644)
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for single-value range")
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	if _, err := LoadFile("/nonexistent/costs.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
