package report

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	ntw "moul.io/number-to-words"
)

var titler = cases.Title(language.English)

// AmountInWords renders a monetary amount as natural language, suffixed
// with the currency name: 25.50 → "Twenty-Five Point Fifty US Dollars
// Only". The currency suffix is emitted verbatim.
func AmountInWords(amount decimal.Decimal, currency string) string {
	units := amount.IntPart()
	cents := amount.Sub(decimal.NewFromInt(units)).Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	words := ntw.IntegerToEnUs(int(units))
	if cents != 0 {
		words += " point " + ntw.IntegerToEnUs(int(cents))
	}

	return titler.String(words) + " " + currency + " Only"
}
