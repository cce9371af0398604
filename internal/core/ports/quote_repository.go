package ports

import (
	"context"

	"github.com/opsdesk/business-ops/internal/core/domain"
)

// ListQuotesFilter carries query parameters for listing quotes.
type ListQuotesFilter struct {
	Team  string // optional: exact match on first_response_team
	Page  int
	Limit int
}

// QuoteRepository defines persistence operations for quotes. Quotes are
// insert-only; there is no update path.
type QuoteRepository interface {
	Insert(ctx context.Context, q *domain.Quote) (*domain.Quote, error)
	List(ctx context.Context, filter ListQuotesFilter) ([]*domain.Quote, int64, error)
	// MaxQSIDNumber returns the highest numeric QSID among stored quotes,
	// ordered by parsed value rather than string so references past Q-999
	// sort correctly. Used once at startup to seed the sequence counter.
	MaxQSIDNumber(ctx context.Context) (int64, error)
}

// SequenceRepository allocates monotonically increasing reference numbers
// through an atomic increment, guaranteeing uniqueness under concurrent
// creation.
type SequenceRepository interface {
	// Next atomically increments the named counter and returns its new value.
	Next(ctx context.Context, name string) (int64, error)
	// Seed raises the named counter to at least floor without ever lowering
	// it, so sequences continue after pre-counter data.
	Seed(ctx context.Context, name string, floor int64) error
}

// Sequence counter names.
const (
	SequenceQuotes     = "quotes"
	SequenceBusinesses = "businesses"
)
