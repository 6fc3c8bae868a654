package directory

import (
	"reflect"
	"testing"

	"github.com/gyeh/carecost/internal/model"
)

func TestSummarize(t *testing.T) {
	rows := []model.HospitalRecord{
		{Name: "A", Treatments: "Cardiac, Neurology", City: "Chennai", Tier: "Private"},
		{Name: "B", Treatments: "cardiac", City: " chennai ", Tier: "public"},
		{Name: "C", Treatments: "Dental Care", City: "Pune", Tier: "multi specialty"},
		{Name: "D", Treatments: "", City: "", Tier: ""},
	}
	s := Summarize(rows, []string{"cardiac", "dental care", "fever"})

	if s.Rows != 4 {
		t.Errorf("rows = %d", s.Rows)
	}
	if s.Cities != 2 {
		t.Errorf("cities = %d, want 2", s.Cities)
	}
	wantTiers := map[string]int{"private": 1, "public": 1, "multi specialty": 1, "": 1}
	if !reflect.DeepEqual(s.Tiers, wantTiers) {
		t.Errorf("tiers = %v", s.Tiers)
	}
	wantCov := []TreatmentCoverage{{"cardiac", 2}, {"dental care", 1}, {"fever", 0}}
	if !reflect.DeepEqual(s.Coverage, wantCov) {
		t.Errorf("coverage = %v", s.Coverage)
	}
	wantNames := []string{"public", "private", "", "multi specialty"}
	if got := s.TierNames(); !reflect.DeepEqual(got, wantNames) {
		t.Errorf("tier names = %q, want %q", got, wantNames)
	}
}
