package costtable

import "github.com/gyeh/carecost/internal/model"

func entry(name string, public, private, specialty [2]int64) Entry {
	return Entry{
		Treatment: name,
		Ranges: map[model.Tier]model.CostRange{
			model.TierPublic:    model.NewCostRange(public[0], public[1]),
			model.TierPrivate:   model.NewCostRange(private[0], private[1]),
			model.TierSpecialty: model.NewCostRange(specialty[0], specialty[1]),
		},
	}
}

// DefaultEntries is the built-in price list, in display order.
func DefaultEntries() []Entry {
	return []Entry{
		entry("cold/flu", [2]int64{50, 200}, [2]int64{300, 600}, [2]int64{800, 1200}),
		entry("fever", [2]int64{50, 250}, [2]int64{300, 600}, [2]int64{1000, 1800}),
		entry("diabetes check-up", [2]int64{0, 0}, [2]int64{600, 1200}, [2]int64{2500, 4000}),
		entry("orthopedic", [2]int64{5000, 8000}, [2]int64{20000, 25000}, [2]int64{35000, 40000}),
		entry("cardiac", [2]int64{70000, 100000}, [2]int64{150000, 200000}, [2]int64{300000, 350000}),
		entry("neurology", [2]int64{40000, 60000}, [2]int64{120000, 150000}, [2]int64{250000, 300000}),
		entry("skin allergy", [2]int64{100, 300}, [2]int64{600, 2000}, [2]int64{3000, 3500}),
		entry("dental care", [2]int64{300, 600}, [2]int64{2000, 2500}, [2]int64{4000, 5000}),
	}
}

// Default returns the built-in table.
func Default() *Table {
	t, err := New(DefaultCurrency, DefaultEntries())
	if err != nil {
		panic("costtable: invalid default table: " + err.Error())
	}
	return t
}
