package normalize

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Title title-cases s for display ("new delhi" → "New Delhi").
func Title(s string) string {
	return cases.Title(language.English).String(s)
}
