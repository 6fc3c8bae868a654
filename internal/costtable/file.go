package costtable

import (
	"bytes"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/gyeh/carecost/internal/model"
)

// yamlTable is the on-disk YAML structure.
type yamlTable struct {
	Currency   string          `yaml:"currency"`
	Treatments []yamlTreatment `yaml:"treatments"`
}

type yamlTreatment struct {
	Name      string    `yaml:"name"`
	Public    []float64 `yaml:"public"`
	Private   []float64 `yaml:"private"`
	Specialty []float64 `yaml:"specialty"`
}

// LoadFile reads a YAML cost table. Unknown fields are rejected.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cost table: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML cost table document.
func Parse(data []byte) (*Table, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var yt yamlTable
	if err := dec.Decode(&yt); err != nil {
		return nil, fmt.Errorf("parse cost table: %w", err)
	}

	entries := make([]Entry, 0, len(yt.Treatments))
	for _, tr := range yt.Treatments {
		e := Entry{Treatment: tr.Name, Ranges: make(map[model.Tier]model.CostRange, 3)}
		for tier, bounds := range map[model.Tier][]float64{
			model.TierPublic:    tr.Public,
			model.TierPrivate:   tr.Private,
			model.TierSpecialty: tr.Specialty,
		} {
			if bounds == nil {
				continue
			}
			if len(bounds) != 2 {
				return nil, fmt.Errorf("treatment %q tier %s: want [min, max], got %d values", tr.Name, tier, len(bounds))
			}
			e.Ranges[tier] = model.CostRange{
				Min: decimal.NewFromFloat(bounds[0]),
				Max: decimal.NewFromFloat(bounds[1]),
			}
		}
		entries = append(entries, e)
	}
	return New(yt.Currency, entries)
}
