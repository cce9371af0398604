package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/opsdesk/business-ops/internal/core/domain"
)

// quoteLineRequest carries one priced line. Amount is a pointer so an absent
// field is distinguishable from an explicit zero.
type quoteLineRequest struct {
	Service     string           `json:"service" validate:"required"`
	Description string           `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
}

type calculateQuoteRequest struct {
	Lines              []quoteLineRequest `json:"lines" validate:"required,min=1,dive"`
	DiscountPercentage decimal.Decimal    `json:"discount_percentage"`
	VATPercentage      decimal.Decimal    `json:"vat_percentage"`
}

type createQuoteRequest struct {
	BusinessID         string             `json:"business_id"`
	Date               time.Time          `json:"date"`
	FirstResponseTeam  string             `json:"first_response_team"`
	Lines              []quoteLineRequest `json:"lines" validate:"required,min=1,dive"`
	DiscountPercentage decimal.Decimal    `json:"discount_percentage"`
	VATPercentage      decimal.Decimal    `json:"vat_percentage"`
}

type quoteResponse struct {
	domain.Quote
	BusinessName string `json:"business_name,omitempty"`
}

type listQuotesResponse struct {
	Data       []quoteResponse    `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
