package domain

import "github.com/shopspring/decimal"

// QuoteTotals holds the four derived monetary fields of a quote, each rounded
// to two decimal places.
type QuoteTotals struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	VATAmount      decimal.Decimal `json:"vat_amount"`
	Total          decimal.Decimal `json:"total"`
}

var hundred = decimal.NewFromInt(100)

// CalculateQuote derives subtotal, discount, VAT and total from raw line
// amounts and two percentage rates. VAT is charged on the post-discount
// amount, so the order of operations is fixed:
//
//	subtotal = Σ amounts
//	discount = subtotal × discountPct/100
//	vat      = (subtotal − discount) × vatPct/100
//	total    = subtotal − discount + vat
//
// Rounding (two decimal places, half away from zero) is applied to the four
// outputs only, never to intermediates. The function is pure and
// deterministic; an empty amounts slice yields all zeros.
func CalculateQuote(amounts []decimal.Decimal, discountPct, vatPct decimal.Decimal) QuoteTotals {
	subtotal := decimal.Zero
	for _, a := range amounts {
		subtotal = subtotal.Add(a)
	}

	discount := subtotal.Mul(discountPct.Div(hundred))
	vat := subtotal.Sub(discount).Mul(vatPct.Div(hundred))
	total := subtotal.Sub(discount).Add(vat)

	return QuoteTotals{
		Subtotal:       subtotal.Round(2),
		DiscountAmount: discount.Round(2),
		VATAmount:      vat.Round(2),
		Total:          total.Round(2),
	}
}
