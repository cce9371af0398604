package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decs(ss ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, len(ss))
	for i, s := range ss {
		out[i] = dec(s)
	}
	return out
}

func TestCalculateQuote(t *testing.T) {
	tests := []struct {
		name        string
		amounts     []decimal.Decimal
		discountPct string
		vatPct      string
		subtotal    string
		discount    string
		vat         string
		total       string
	}{
		{
			name:        "standard discount and vat",
			amounts:     decs("100", "50"),
			discountPct: "10", vatPct: "20",
			subtotal: "150", discount: "15", vat: "27", total: "162",
		},
		{
			name:    "no lines",
			amounts: nil, discountPct: "10", vatPct: "20",
			subtotal: "0", discount: "0", vat: "0", total: "0",
		},
		{
			name:        "zero rates",
			amounts:     decs("19.99", "0.01"),
			discountPct: "0", vatPct: "0",
			subtotal: "20", discount: "0", vat: "0", total: "20",
		},
		{
			name:        "full discount",
			amounts:     decs("80"),
			discountPct: "100", vatPct: "20",
			subtotal: "80", discount: "80", vat: "0", total: "0",
		},
		{
			name:        "fractional rates round at output only",
			amounts:     decs("33.33", "66.67"),
			discountPct: "12.5", vatPct: "17.5",
			// discount = 12.5, net = 87.5, vat = 15.3125 → 15.31,
			// total = 102.8125 → 102.81 (rounded from the exact value,
			// not from pre-rounded parts)
			subtotal: "100", discount: "12.5", vat: "15.31", total: "102.81",
		},
		{
			name:        "half rounds away from zero",
			amounts:     decs("0.25"),
			discountPct: "50", vatPct: "0",
			// discount = 0.125 → 0.13, total = 0.125 → 0.13
			subtotal: "0.25", discount: "0.13", vat: "0", total: "0.13",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateQuote(tt.amounts, dec(tt.discountPct), dec(tt.vatPct))
			assert.True(t, got.Subtotal.Equal(dec(tt.subtotal)), "subtotal = %s, want %s", got.Subtotal, tt.subtotal)
			assert.True(t, got.DiscountAmount.Equal(dec(tt.discount)), "discount = %s, want %s", got.DiscountAmount, tt.discount)
			assert.True(t, got.VATAmount.Equal(dec(tt.vat)), "vat = %s, want %s", got.VATAmount, tt.vat)
			assert.True(t, got.Total.Equal(dec(tt.total)), "total = %s, want %s", got.Total, tt.total)
		})
	}
}

func TestCalculateQuote_Deterministic(t *testing.T) {
	amounts := decs("12.34", "56.78", "0.01")
	first := CalculateQuote(amounts, dec("7.5"), dec("20"))
	second := CalculateQuote(amounts, dec("7.5"), dec("20"))

	require.True(t, first.Subtotal.Equal(second.Subtotal))
	require.True(t, first.DiscountAmount.Equal(second.DiscountAmount))
	require.True(t, first.VATAmount.Equal(second.VATAmount))
	require.True(t, first.Total.Equal(second.Total))
}

func TestCalculateQuote_TwoDecimalPlaces(t *testing.T) {
	got := CalculateQuote(decs("10.005", "0.001"), dec("3.33"), dec("17.89"))
	for name, v := range map[string]decimal.Decimal{
		"subtotal": got.Subtotal,
		"discount": got.DiscountAmount,
		"vat":      got.VATAmount,
		"total":    got.Total,
	} {
		assert.LessOrEqual(t, int(v.Exponent())*-1, 2, "%s has more than 2 decimal places: %s", name, v)
	}
}
