package main

import (
	"testing"

	"github.com/gyeh/carecost/internal/model"
)

func TestSample_CoversEveryTierInOrder(t *testing.T) {
	rows := []model.HospitalRecord{
		{Name: "p1", Tier: model.TierPublic},
		{Name: "p2", Tier: model.TierPublic},
		{Name: "p3", Tier: model.TierPublic},
		{Name: "s1", Tier: model.TierSpecialty},
		{Name: "x1", Tier: ""},
		{Name: "p4", Tier: "Public"},
	}
	got := sample(rows, 3)
	want := []string{"p1", "s1", "x1"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Name != want[i] {
			t.Errorf("row %d = %s, want %s", i, got[i].Name, want[i])
		}
	}
}

func TestSample_ShortInputUnchanged(t *testing.T) {
	rows := []model.HospitalRecord{{Name: "a"}, {Name: "b"}}
	if got := sample(rows, 10); len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}
