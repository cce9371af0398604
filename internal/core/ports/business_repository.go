package ports

import (
	"context"

	"github.com/opsdesk/business-ops/internal/core/domain"
)

// ListBusinessesFilter carries query parameters for listing businesses.
// ContactIDs, when non-empty, widens the search to businesses referencing any
// of those contacts (the service resolves them from a contact-side search).
type ListBusinessesFilter struct {
	Search     string
	ContactIDs []string
	Type       domain.BusinessType // Unknown means no filter
	Page       int
	Limit      int
}

// BusinessRepository defines persistence operations for businesses.
type BusinessRepository interface {
	Insert(ctx context.Context, b *domain.Business) (*domain.Business, error)
	FindByID(ctx context.Context, id string) (*domain.Business, error)
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Business, error)
	List(ctx context.Context, filter ListBusinessesFilter) ([]*domain.Business, int64, error)
}

// ContactRepository defines persistence operations for contact records.
// Contacts live independently of businesses; deleting a business never
// cascades here.
type ContactRepository interface {
	Insert(ctx context.Context, c *domain.Contact) (*domain.Contact, error)
	FindByID(ctx context.Context, id string) (*domain.Contact, error)
	// SearchIDs returns the ids of contacts whose names, emails or phone
	// numbers match the term, for contact-side business search.
	SearchIDs(ctx context.Context, term string) ([]string, error)
}
