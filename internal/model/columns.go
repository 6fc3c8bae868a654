package model

// Column is one required column of a hospital directory file.
type Column struct {
	Name    string   // canonical header, e.g. "hospital name"
	Parquet string   // parquet column name
	Aliases []string // other normalised spellings accepted for Name
}

// RequiredColumns lists the directory columns in canonical order.
var RequiredColumns = []Column{
	{Name: "hospital name", Parquet: "hospital_name", Aliases: []string{"hospital_name"}},
	{Name: "best_treatments", Parquet: "best_treatments", Aliases: []string{"best treatments"}},
	{Name: "city", Parquet: "city"},
	{Name: "hospital type", Parquet: "hospital_type", Aliases: []string{"hospital _type", "hospital_type"}},
}

// CanonicalColumn maps a normalised header to its canonical column name.
// ok is false for headers that are not directory columns.
func CanonicalColumn(header string) (string, bool) {
	for _, c := range RequiredColumns {
		if header == c.Name || header == c.Parquet {
			return c.Name, true
		}
		for _, a := range c.Aliases {
			if header == a {
				return c.Name, true
			}
		}
	}
	return "", false
}
