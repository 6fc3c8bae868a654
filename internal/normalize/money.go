package normalize

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Money formats an amount with thousands separators and the given number of
// decimal places, prefixed by symbol. e.g. Money("₹", 2250, 2) → "₹2,250.00".
func Money(symbol string, v decimal.Decimal, places int32) string {
	f := v.Round(places).InexactFloat64()
	return symbol + printer.Sprintf(fmt.Sprintf("%%.%df", places), f)
}
