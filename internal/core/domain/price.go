package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Price defines the rate for one work category, owned by an admin.
// (ManagedBy, category) is unique per owner: category case is preserved for
// display but matched case-insensitively everywhere else.
type Price struct {
	ID        string          `json:"id"`
	Category  string          `json:"category"`
	Rate      decimal.Decimal `json:"rate"`
	ManagedBy string          `json:"managed_by"`
}

// CategoryKey returns the canonical lookup key for the category.
func (p *Price) CategoryKey() string {
	return CategoryKey(p.Category)
}

// CategoryKey lowercases a category name for rate-table lookups and
// uniqueness checks.
func CategoryKey(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}
