package ports

import (
	"context"

	"github.com/opsdesk/business-ops/internal/core/domain"
)

// ContactInput carries an inline contact supplied with a new business.
type ContactInput struct {
	FirstName   string
	LastName    string
	Alias       string
	Designation string
	Mode        domain.ContactMode
	Phones      []domain.PhoneEntry
	Emails      []domain.EmailEntry
	Notes       string
}

// CreateBusinessInput carries all data needed to create a business. Contact
// is optional; when present it is stored as its own record and referenced.
type CreateBusinessInput struct {
	Type         domain.BusinessType
	NameOrNumber string
	Address      *domain.Address
	Contact      *ContactInput
}

// BusinessDetail is a business joined with its contact, when the reference
// resolves. Contact is nil for businesses without one or with a dangling
// reference.
type BusinessDetail struct {
	Business domain.Business
	Contact  *domain.Contact
}

// ListBusinessesInput carries parameters for the business listing endpoint.
type ListBusinessesInput struct {
	Search string
	Type   domain.BusinessType
	Page   int
	Limit  int
}

// ListBusinessesResult is returned by BusinessService.List.
type ListBusinessesResult struct {
	Items      []*domain.Business
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// BusinessService defines use-case operations for businesses and their
// contacts.
type BusinessService interface {
	Create(ctx context.Context, input CreateBusinessInput) (*domain.Business, error)
	Get(ctx context.Context, id string) (*BusinessDetail, error)
	List(ctx context.Context, input ListBusinessesInput) (*ListBusinessesResult, error)
}
