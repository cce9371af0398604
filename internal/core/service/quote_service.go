package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/opsdesk/business-ops/internal/core/domain"
	"github.com/opsdesk/business-ops/internal/core/ports"
)

// QuoteService implements quote calculation, creation and listing.
type QuoteService struct {
	quotes     ports.QuoteRepository
	businesses ports.BusinessRepository
	sequences  ports.SequenceRepository
	log        zerolog.Logger
}

func NewQuoteService(
	quotes ports.QuoteRepository,
	businesses ports.BusinessRepository,
	sequences ports.SequenceRepository,
	log zerolog.Logger,
) *QuoteService {
	return &QuoteService{quotes: quotes, businesses: businesses, sequences: sequences, log: log}
}

// Calculate runs the pure calculator over the lines. A line without an
// amount fails validation; the calculator never substitutes zero for a
// missing required field.
func (s *QuoteService) Calculate(input ports.CalculateQuoteInput) (domain.QuoteTotals, error) {
	amounts, err := lineAmounts(input.Lines)
	if err != nil {
		return domain.QuoteTotals{}, err
	}
	return domain.CalculateQuote(amounts, input.DiscountPercentage, input.VATPercentage), nil
}

// Create persists a quote. Totals are recomputed here from the raw line
// amounts, and the QSID comes from the atomic sequence counter, so two
// concurrent creations can never mint the same reference.
func (s *QuoteService) Create(ctx context.Context, input ports.CreateQuoteInput) (*domain.Quote, error) {
	if input.BusinessID != "" {
		if _, err := s.businesses.FindByID(ctx, input.BusinessID); err != nil {
			return nil, err
		}
	}

	amounts, err := lineAmounts(input.Lines)
	if err != nil {
		return nil, err
	}
	totals := domain.CalculateQuote(amounts, input.DiscountPercentage, input.VATPercentage)

	n, err := s.sequences.Next(ctx, ports.SequenceQuotes)
	if err != nil {
		return nil, err
	}

	lines := make([]domain.ServiceLine, len(input.Lines))
	for i, l := range input.Lines {
		lines[i] = domain.ServiceLine{
			Service:     l.Service,
			Description: l.Description,
			Amount:      *l.Amount,
		}
	}

	quote := &domain.Quote{
		BusinessID:         input.BusinessID,
		Date:               input.Date.UTC(),
		FirstResponseTeam:  input.FirstResponseTeam,
		Services:           lines,
		DiscountPercentage: input.DiscountPercentage,
		VATPercentage:      input.VATPercentage,
		Subtotal:           totals.Subtotal,
		VATAmount:          totals.VATAmount,
		Total:              totals.Total,
		QSID:               domain.FormatSeqID(domain.QSIDPrefix, n),
	}

	created, err := s.quotes.Insert(ctx, quote)
	if err != nil {
		s.log.Error().Err(err).Str("qsid", quote.QSID).Msg("failed to create quote")
		return nil, err
	}

	s.log.Info().Str("quote_id", created.ID).Str("qsid", created.QSID).
		Str("total", created.Total.String()).Msg("quote created")

	return created, nil
}

// List returns a page of quotes enriched with the referenced business name.
// A quote whose business no longer resolves is shown as "(Deleted)". The
// search term filters the enriched page on business name.
func (s *QuoteService) List(ctx context.Context, input ports.ListQuotesInput) (*ports.ListQuotesResult, error) {
	input.Page, input.Limit = normalizePage(input.Page, input.Limit)

	quotes, total, err := s.quotes.List(ctx, ports.ListQuotesFilter{
		Team:  input.Team,
		Page:  input.Page,
		Limit: input.Limit,
	})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(quotes))
	seen := make(map[string]struct{}, len(quotes))
	for _, q := range quotes {
		if q.BusinessID == "" {
			continue
		}
		if _, ok := seen[q.BusinessID]; !ok {
			seen[q.BusinessID] = struct{}{}
			ids = append(ids, q.BusinessID)
		}
	}

	names := make(map[string]string, len(ids))
	if len(ids) > 0 {
		businesses, err := s.businesses.FindByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, b := range businesses {
			names[b.ID] = b.NameOrNumber
		}
	}

	items := make([]ports.QuoteWithBusiness, 0, len(quotes))
	for _, q := range quotes {
		name, ok := names[q.BusinessID]
		if !ok {
			name = "(Deleted)"
		}
		if input.Search != "" && !strings.Contains(strings.ToLower(name), strings.ToLower(input.Search)) {
			continue
		}
		items = append(items, ports.QuoteWithBusiness{Quote: *q, BusinessName: name})
	}

	return &ports.ListQuotesResult{
		Items: items,
		Total: total,
		Page:  input.Page,
		Limit: input.Limit,
	}, nil
}

func lineAmounts(lines []ports.QuoteLineInput) ([]decimal.Decimal, error) {
	amounts := make([]decimal.Decimal, len(lines))
	for i, l := range lines {
		if l.Amount == nil {
			return nil, fmt.Errorf("%w: line %d", domain.ErrMissingAmount, i)
		}
		amounts[i] = *l.Amount
	}
	return amounts, nil
}
