package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/opsdesk/business-ops/internal/core/domain"
)

// QuoteLineInput is one service line as received from the transport layer.
// Amount is a pointer so an absent field is distinguishable from zero: a nil
// amount is a validation error, never a silent default.
type QuoteLineInput struct {
	Service     domain.QuoteService
	Description string
	Amount      *decimal.Decimal
}

// CalculateQuoteInput carries the inputs of the pure quote calculation.
type CalculateQuoteInput struct {
	Lines              []QuoteLineInput
	DiscountPercentage decimal.Decimal
	VATPercentage      decimal.Decimal
}

// CreateQuoteInput carries all data needed to persist a quote. Totals are
// recomputed server-side and never accepted from the caller.
type CreateQuoteInput struct {
	BusinessID         string
	Date               time.Time
	FirstResponseTeam  string
	Lines              []QuoteLineInput
	DiscountPercentage decimal.Decimal
	VATPercentage      decimal.Decimal
}

// QuoteWithBusiness is a quote enriched with the referenced business name.
type QuoteWithBusiness struct {
	domain.Quote
	BusinessName string
}

// ListQuotesInput carries parameters for the quote listing endpoint.
type ListQuotesInput struct {
	Team   string
	Search string // optional: substring match on the enriched business name
	Page   int
	Limit  int
}

// ListQuotesResult is returned by QuoteService.List.
type ListQuotesResult struct {
	Items []QuoteWithBusiness
	Total int64
	Page  int
	Limit int
}

// QuoteService defines use-case operations for quotes.
type QuoteService interface {
	// Calculate runs the pure calculator without persisting anything.
	Calculate(input CalculateQuoteInput) (domain.QuoteTotals, error)
	Create(ctx context.Context, input CreateQuoteInput) (*domain.Quote, error)
	List(ctx context.Context, input ListQuotesInput) (*ListQuotesResult, error)
}
