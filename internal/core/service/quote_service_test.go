package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/opsdesk/business-ops/internal/core/domain"
	"github.com/opsdesk/business-ops/internal/core/ports"
)

type stubQuoteRepo struct {
	quotes []*domain.Quote
}

func (r *stubQuoteRepo) Insert(_ context.Context, q *domain.Quote) (*domain.Quote, error) {
	clone := *q
	clone.ID = "q-" + clone.QSID
	r.quotes = append(r.quotes, &clone)
	return &clone, nil
}

func (r *stubQuoteRepo) List(_ context.Context, filter ports.ListQuotesFilter) ([]*domain.Quote, int64, error) {
	var out []*domain.Quote
	for _, q := range r.quotes {
		if filter.Team != "" && q.FirstResponseTeam != filter.Team {
			continue
		}
		out = append(out, q)
	}
	return out, int64(len(out)), nil
}

func (r *stubQuoteRepo) MaxQSIDNumber(_ context.Context) (int64, error) {
	var max int64
	for _, q := range r.quotes {
		if n := domain.ParseSeqID(domain.QSIDPrefix, q.QSID); n > max {
			max = n
		}
	}
	return max, nil
}

type stubBusinessRepo struct {
	byID map[string]*domain.Business
}

func (r *stubBusinessRepo) Insert(_ context.Context, b *domain.Business) (*domain.Business, error) {
	clone := *b
	if clone.ID == "" {
		clone.ID = "b-" + clone.BSID
	}
	r.byID[clone.ID] = &clone
	return &clone, nil
}

func (r *stubBusinessRepo) FindByID(_ context.Context, id string) (*domain.Business, error) {
	if b, ok := r.byID[id]; ok {
		clone := *b
		return &clone, nil
	}
	return nil, domain.ErrBusinessNotFound
}

func (r *stubBusinessRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.Business, error) {
	var out []*domain.Business
	for _, id := range ids {
		if b, ok := r.byID[id]; ok {
			clone := *b
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubBusinessRepo) List(_ context.Context, _ ports.ListBusinessesFilter) ([]*domain.Business, int64, error) {
	var out []*domain.Business
	for _, b := range r.byID {
		clone := *b
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

type stubSequenceRepo struct {
	counters map[string]int64
}

func newStubSequenceRepo() *stubSequenceRepo {
	return &stubSequenceRepo{counters: map[string]int64{}}
}

func (r *stubSequenceRepo) Next(_ context.Context, name string) (int64, error) {
	r.counters[name]++
	return r.counters[name], nil
}

func (r *stubSequenceRepo) Seed(_ context.Context, name string, floor int64) error {
	if r.counters[name] < floor {
		r.counters[name] = floor
	}
	return nil
}

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func amount(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

func quoteServiceFixture() (*QuoteService, *stubQuoteRepo, *stubBusinessRepo, *stubSequenceRepo) {
	quotes := &stubQuoteRepo{}
	businesses := &stubBusinessRepo{byID: map[string]*domain.Business{
		"biz-1": {ID: "biz-1", NameOrNumber: "Acme Ltd", Type: domain.BusinessLimited, BSID: "B-001"},
	}}
	seq := newStubSequenceRepo()
	return NewQuoteService(quotes, businesses, seq, zerolog.Nop()), quotes, businesses, seq
}

func TestQuoteService_Calculate(t *testing.T) {
	svc, _, _, _ := quoteServiceFixture()

	totals, err := svc.Calculate(ports.CalculateQuoteInput{
		Lines: []ports.QuoteLineInput{
			{Service: domain.QuoteServiceSetup, Amount: amount("100")},
			{Service: domain.QuoteServiceConsulting, Amount: amount("50")},
		},
		DiscountPercentage: d("10"),
		VATPercentage:      d("20"),
	})
	if err != nil {
		t.Fatalf("calculate failed: %v", err)
	}
	if !totals.Subtotal.Equal(d("150")) || !totals.DiscountAmount.Equal(d("15")) ||
		!totals.VATAmount.Equal(d("27")) || !totals.Total.Equal(d("162")) {
		t.Fatalf("unexpected totals: %+v", totals)
	}
}

func TestQuoteService_CalculateMissingAmount(t *testing.T) {
	svc, _, _, _ := quoteServiceFixture()

	_, err := svc.Calculate(ports.CalculateQuoteInput{
		Lines: []ports.QuoteLineInput{
			{Service: domain.QuoteServiceSetup, Amount: amount("100")},
			{Service: domain.QuoteServicePayroll}, // no amount
		},
		DiscountPercentage: d("0"),
		VATPercentage:      d("20"),
	})
	if !errors.Is(err, domain.ErrMissingAmount) {
		t.Fatalf("expected ErrMissingAmount, got %v", err)
	}
}

func TestQuoteService_CreateComputesTotalsAndQSID(t *testing.T) {
	svc, quotes, _, _ := quoteServiceFixture()

	input := ports.CreateQuoteInput{
		BusinessID:        "biz-1",
		Date:              time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC),
		FirstResponseTeam: "north",
		Lines: []ports.QuoteLineInput{
			{Service: domain.QuoteServiceAccounting, Description: "year end", Amount: amount("100")},
			{Service: domain.QuoteServicePayroll, Amount: amount("50")},
		},
		DiscountPercentage: d("10"),
		VATPercentage:      d("20"),
	}

	first, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if first.QSID != "Q-001" {
		t.Fatalf("expected QSID Q-001, got %s", first.QSID)
	}
	if !first.Subtotal.Equal(d("150")) || !first.VATAmount.Equal(d("27")) || !first.Total.Equal(d("162")) {
		t.Fatalf("totals not recomputed server-side: %+v", first)
	}

	second, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("second create failed: %v", err)
	}
	if second.QSID != "Q-002" {
		t.Fatalf("expected QSID Q-002, got %s", second.QSID)
	}
	if len(quotes.quotes) != 2 {
		t.Fatalf("expected 2 stored quotes, got %d", len(quotes.quotes))
	}
}

func TestQuoteService_CreateMissingAmountDoesNotAllocate(t *testing.T) {
	svc, quotes, _, seq := quoteServiceFixture()

	_, err := svc.Create(context.Background(), ports.CreateQuoteInput{
		BusinessID: "biz-1",
		Lines:      []ports.QuoteLineInput{{Service: domain.QuoteServiceSetup}},
	})
	if !errors.Is(err, domain.ErrMissingAmount) {
		t.Fatalf("expected ErrMissingAmount, got %v", err)
	}
	if len(quotes.quotes) != 0 {
		t.Fatalf("nothing should have been persisted")
	}
	if seq.counters[ports.SequenceQuotes] != 0 {
		t.Fatalf("sequence must not be consumed on validation failure")
	}
}

func TestQuoteService_CreateUnknownBusiness(t *testing.T) {
	svc, _, _, _ := quoteServiceFixture()

	_, err := svc.Create(context.Background(), ports.CreateQuoteInput{
		BusinessID: "ghost",
		Lines:      []ports.QuoteLineInput{{Service: domain.QuoteServiceSetup, Amount: amount("10")}},
	})
	if !errors.Is(err, domain.ErrBusinessNotFound) {
		t.Fatalf("expected ErrBusinessNotFound, got %v", err)
	}
}

func TestQuoteService_ListEnrichesBusinessName(t *testing.T) {
	svc, quotes, _, _ := quoteServiceFixture()
	quotes.quotes = []*domain.Quote{
		{ID: "q1", BusinessID: "biz-1", QSID: "Q-001", FirstResponseTeam: "north"},
		{ID: "q2", BusinessID: "gone", QSID: "Q-002", FirstResponseTeam: "south"},
	}

	result, err := svc.List(context.Background(), ports.ListQuotesInput{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(result.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(result.Items))
	}
	names := map[string]string{}
	for _, item := range result.Items {
		names[item.ID] = item.BusinessName
	}
	if names["q1"] != "Acme Ltd" {
		t.Fatalf("expected enriched business name, got %q", names["q1"])
	}
	if names["q2"] != "(Deleted)" {
		t.Fatalf("dangling business reference should render as (Deleted), got %q", names["q2"])
	}

	searched, err := svc.List(context.Background(), ports.ListQuotesInput{Search: "acme", Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("search list failed: %v", err)
	}
	if len(searched.Items) != 1 || searched.Items[0].ID != "q1" {
		t.Fatalf("search should filter on enriched name: %+v", searched.Items)
	}
}
