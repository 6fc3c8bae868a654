package model

import "strings"

// Tier is a hospital category. Directory rows may carry values outside the
// enumerated set; Valid reports whether a tier is one the cost table prices.
type Tier string

const (
	TierPublic    Tier = "public"
	TierPrivate   Tier = "private"
	TierSpecialty Tier = "specialty"
)

// AllTiers lists the priced tiers in display order.
var AllTiers = []Tier{TierPublic, TierPrivate, TierSpecialty}

// ParseTier canonicalises s and reports whether it names a priced tier.
func ParseTier(s string) (Tier, bool) {
	t := Tier(strings.ToLower(strings.TrimSpace(s)))
	return t, t.Valid()
}

func (t Tier) Valid() bool {
	switch t {
	case TierPublic, TierPrivate, TierSpecialty:
		return true
	}
	return false
}

func (t Tier) String() string { return string(t) }
