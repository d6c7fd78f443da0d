package report

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"25", "Twenty-Five US Dollars Only"},
		{"25.50", "Twenty-Five Point Fifty US Dollars Only"},
		{"0", "Zero US Dollars Only"},
		{"100", "One Hundred US Dollars Only"},
		{"1234", "One Thousand Two Hundred Thirty-Four US Dollars Only"},
	}

	for _, tt := range tests {
		got := AmountInWords(decimal.RequireFromString(tt.amount), "US Dollars")
		if got != tt.want {
			t.Errorf("AmountInWords(%s) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestAmountInWords_CurrencyVerbatim(t *testing.T) {
	got := AmountInWords(decimal.NewFromInt(2), "Euros")
	if got != "Two Euros Only" {
		t.Errorf("unexpected result: %q", got)
	}
}
