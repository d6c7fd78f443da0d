package service

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/studiobill/invoice-system/internal/core/domain"
	"github.com/studiobill/invoice-system/internal/core/ports"
)

// BuildRateTable flattens scoped prices into a lookup keyed by lowercased
// category.
func BuildRateTable(prices []*domain.Price) map[string]decimal.Decimal {
	rates := make(map[string]decimal.Decimal, len(prices))
	for _, p := range prices {
		rates[p.CategoryKey()] = p.Rate
	}
	return rates
}

// Aggregate joins work entries with a rate table into invoice line items
// plus running totals. It is a pure function: identical inputs always yield
// identical output, and the input slice is left untouched.
//
// Categories are matched case-insensitively; an unpriced category gets rate
// zero (a pricing gap is a data-quality issue, not an error). Output order
// is ascending by date, ties broken by the entries' original order, since
// invoices are read chronologically.
func Aggregate(entries []*domain.WorkEntry, rates map[string]decimal.Decimal) ([]ports.LineItem, ports.Totals) {
	ordered := make([]*domain.WorkEntry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	items := make([]ports.LineItem, 0, len(ordered))
	totals := ports.Totals{Amount: decimal.Zero}

	for _, e := range ordered {
		rate, ok := rates[domain.CategoryKey(e.Category)]
		if !ok {
			rate = decimal.Zero
		}
		amount := rate.Mul(decimal.NewFromInt(int64(e.Quantity)))

		items = append(items, ports.LineItem{
			Category: e.Category,
			Date:     e.Date,
			Quantity: e.Quantity,
			Rate:     rate,
			Amount:   amount,
		})

		totals.Quantity += e.Quantity
		totals.Amount = totals.Amount.Add(amount)
	}

	return items, totals
}
