package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// QuoteService is the kind of work a quote line charges for.
type QuoteService string

const (
	QuoteServiceUnknown    QuoteService = "unknown"
	QuoteServiceSetup      QuoteService = "setup"
	QuoteServiceAccounting QuoteService = "accounting"
	QuoteServicePayroll    QuoteService = "payroll"
	QuoteServiceCompliance QuoteService = "compliance"
	QuoteServiceConsulting QuoteService = "consulting"
)

func ParseQuoteService(s string) (QuoteService, error) {
	switch QuoteService(s) {
	case QuoteServiceSetup, QuoteServiceAccounting, QuoteServicePayroll,
		QuoteServiceCompliance, QuoteServiceConsulting, QuoteServiceUnknown:
		return QuoteService(s), nil
	}
	return QuoteServiceUnknown, fmt.Errorf("%w: quote service %q", ErrUnknownEnumValue, s)
}

// ServiceLine is a single priced item on a quote.
type ServiceLine struct {
	Service     QuoteService    `json:"service"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// Quote is a financial document. Once created it is never modified; the four
// monetary fields are derived server-side by CalculateQuote, never trusted
// from the client.
type Quote struct {
	ID                 string          `json:"id"`
	BusinessID         string          `json:"business_id"`
	Date               time.Time       `json:"date"`
	FirstResponseTeam  string          `json:"first_response_team"`
	Services           []ServiceLine   `json:"services"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	VATPercentage      decimal.Decimal `json:"vat_percentage"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	VATAmount          decimal.Decimal `json:"vat_amount"`
	Total              decimal.Decimal `json:"total"`
	QSID               string          `json:"qsid"`
}
