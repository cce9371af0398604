package handler

import (
	"github.com/opsdesk/business-ops/internal/core/domain"
	"github.com/opsdesk/business-ops/internal/core/ports"
)

func toCreateBusinessInput(req createBusinessRequest) (ports.CreateBusinessInput, error) {
	btype, err := domain.ParseBusinessType(req.Type)
	if err != nil {
		return ports.CreateBusinessInput{}, err
	}

	input := ports.CreateBusinessInput{
		Type:         btype,
		NameOrNumber: req.NameOrNumber,
	}
	if req.Address != nil {
		input.Address = &domain.Address{
			Building: req.Address.Building,
			Street:   req.Address.Street,
			City:     req.Address.City,
			County:   req.Address.County,
			Postcode: req.Address.Postcode,
			Country:  req.Address.Country,
		}
	}
	if req.Contact != nil {
		contact, err := toContactInput(*req.Contact)
		if err != nil {
			return ports.CreateBusinessInput{}, err
		}
		input.Contact = contact
	}
	return input, nil
}

func toContactInput(req contactRequest) (*ports.ContactInput, error) {
	mode := domain.ContactModeUnknown
	if req.Mode != "" {
		parsed, err := domain.ParseContactMode(req.Mode)
		if err != nil {
			return nil, err
		}
		mode = parsed
	}

	phones := make([]domain.PhoneEntry, len(req.Phones))
	for i, p := range req.Phones {
		label, err := toContactLabel(p.Type)
		if err != nil {
			return nil, err
		}
		phones[i] = domain.PhoneEntry{Value: p.Value, Type: label}
	}

	emails := make([]domain.EmailEntry, len(req.Emails))
	for i, e := range req.Emails {
		label, err := toContactLabel(e.Type)
		if err != nil {
			return nil, err
		}
		emails[i] = domain.EmailEntry{Value: e.Value, Type: label}
	}

	return &ports.ContactInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Alias:       req.Alias,
		Designation: req.Designation,
		Mode:        mode,
		Phones:      phones,
		Emails:      emails,
		Notes:       req.Notes,
	}, nil
}

func toContactLabel(s string) (domain.ContactLabel, error) {
	if s == "" {
		return domain.ContactLabelUnknown, nil
	}
	return domain.ParseContactLabel(s)
}
