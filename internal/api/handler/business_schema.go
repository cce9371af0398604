package handler

import "github.com/opsdesk/business-ops/internal/core/domain"

type contactEntryRequest struct {
	Value string `json:"value" validate:"required"`
	Type  string `json:"type"`
}

type contactRequest struct {
	FirstName   string                `json:"first_name" validate:"required"`
	LastName    string                `json:"last_name"`
	Alias       string                `json:"alias"`
	Designation string                `json:"designation"`
	Mode        string                `json:"mode"`
	Phones      []contactEntryRequest `json:"phones" validate:"dive"`
	Emails      []contactEntryRequest `json:"emails" validate:"dive"`
	Notes       string                `json:"notes"`
}

type addressRequest struct {
	Building string `json:"building"`
	Street   string `json:"street"`
	City     string `json:"city"`
	County   string `json:"county"`
	Postcode string `json:"postcode"`
	Country  string `json:"country"`
}

type createBusinessRequest struct {
	Type         string          `json:"type"           validate:"required"`
	NameOrNumber string          `json:"name_or_number" validate:"required"`
	Address      *addressRequest `json:"address"`
	Contact      *contactRequest `json:"contact"`
}

type businessDetailResponse struct {
	Business domain.Business `json:"business"`
	Contact  *domain.Contact `json:"contact,omitempty"`
}

type listBusinessesResponse struct {
	Data       []*domain.Business `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
