package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/opsdesk/business-ops/internal/core/domain"
	"github.com/opsdesk/business-ops/internal/core/ports"
)

// BusinessService implements business and contact management.
type BusinessService struct {
	businesses ports.BusinessRepository
	contacts   ports.ContactRepository
	sequences  ports.SequenceRepository
	log        zerolog.Logger
}

func NewBusinessService(
	businesses ports.BusinessRepository,
	contacts ports.ContactRepository,
	sequences ports.SequenceRepository,
	log zerolog.Logger,
) *BusinessService {
	return &BusinessService{businesses: businesses, contacts: contacts, sequences: sequences, log: log}
}

// Create stores a business with an atomically allocated BSID. An inline
// contact, when supplied, becomes its own record referenced by id; the
// contact's lifetime stays independent of the business afterwards.
func (s *BusinessService) Create(ctx context.Context, input ports.CreateBusinessInput) (*domain.Business, error) {
	var contactID string
	if input.Contact != nil {
		contact := &domain.Contact{
			FirstName:   input.Contact.FirstName,
			LastName:    input.Contact.LastName,
			Alias:       input.Contact.Alias,
			Designation: input.Contact.Designation,
			Mode:        input.Contact.Mode,
			Phones:      input.Contact.Phones,
			Emails:      input.Contact.Emails,
			Notes:       input.Contact.Notes,
		}
		created, err := s.contacts.Insert(ctx, contact)
		if err != nil {
			return nil, err
		}
		contactID = created.ID
	}

	n, err := s.sequences.Next(ctx, ports.SequenceBusinesses)
	if err != nil {
		return nil, err
	}

	business := &domain.Business{
		Type:         input.Type,
		NameOrNumber: input.NameOrNumber,
		Address:      input.Address,
		ContactID:    contactID,
		BSID:         domain.FormatSeqID(domain.BSIDPrefix, n),
	}

	created, err := s.businesses.Insert(ctx, business)
	if err != nil {
		s.log.Error().Err(err).Str("name", input.NameOrNumber).Msg("failed to create business")
		return nil, err
	}

	s.log.Info().Str("business_id", created.ID).Str("bsid", created.BSID).Msg("business created")
	return created, nil
}

// Get returns the business joined with its contact. A dangling contact
// reference is tolerated: the detail simply carries no contact.
func (s *BusinessService) Get(ctx context.Context, id string) (*ports.BusinessDetail, error) {
	business, err := s.businesses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &ports.BusinessDetail{Business: *business}
	if business.ContactID != "" {
		contact, err := s.contacts.FindByID(ctx, business.ContactID)
		if err != nil && !errors.Is(err, domain.ErrContactNotFound) {
			return nil, err
		}
		detail.Contact = contact
	}
	return detail, nil
}

func (s *BusinessService) List(ctx context.Context, input ports.ListBusinessesInput) (*ports.ListBusinessesResult, error) {
	input.Page, input.Limit = normalizePage(input.Page, input.Limit)

	filter := ports.ListBusinessesFilter{
		Search: input.Search,
		Type:   input.Type,
		Page:   input.Page,
		Limit:  input.Limit,
	}
	if input.Search != "" {
		// Widen the search to businesses whose referenced contact matches.
		ids, err := s.contacts.SearchIDs(ctx, input.Search)
		if err != nil {
			return nil, err
		}
		filter.ContactIDs = ids
	}

	items, total, err := s.businesses.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.ListBusinessesResult{
		Items:      items,
		Total:      total,
		Page:       input.Page,
		Limit:      input.Limit,
		TotalPages: totalPages(total, input.Limit),
	}, nil
}
