package normalize

import (
	"regexp"
	"strings"
)

var multiSpace = regexp.MustCompile(`\s+`)

// Key lowercases, collapses whitespace, and trims the input. It is the
// canonical form for treatment keys, tiers and match queries.
func Key(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	return multiSpace.ReplaceAllString(s, " ")
}

// Header normalises a directory column header: UTF-8 BOM stripped, then Key.
func Header(h string) string {
	return Key(strings.TrimPrefix(h, "\ufeff"))
}

// Cell trims a directory cell value.
func Cell(v string) string {
	return strings.TrimSpace(v)
}

// CellPtr trims an optional cell value; nil becomes "".
func CellPtr(v *string) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(*v)
}
