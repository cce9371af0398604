package domain

import "fmt"

// BusinessType distinguishes registered companies from sole traders.
type BusinessType string

const (
	BusinessUnknown    BusinessType = "unknown"
	BusinessLimited    BusinessType = "limited"
	BusinessIndividual BusinessType = "individual"
)

func ParseBusinessType(s string) (BusinessType, error) {
	switch BusinessType(s) {
	case BusinessLimited, BusinessIndividual, BusinessUnknown:
		return BusinessType(s), nil
	}
	return BusinessUnknown, fmt.Errorf("%w: business type %q", ErrUnknownEnumValue, s)
}

// Address is an optional postal address attached to a business.
type Address struct {
	Building string `json:"building,omitempty" bson:"building,omitempty"`
	Street   string `json:"street,omitempty" bson:"street,omitempty"`
	City     string `json:"city,omitempty" bson:"city,omitempty"`
	County   string `json:"county,omitempty" bson:"county,omitempty"`
	Postcode string `json:"postcode,omitempty" bson:"postcode,omitempty"`
	Country  string `json:"country,omitempty" bson:"country,omitempty"`
}

// Business is a client entity. ContactID references a separately stored
// Contact; the contact's lifetime is independent and a dangling reference is
// tolerated (rendered as a missing contact, never an error).
type Business struct {
	ID           string       `json:"id" bson:"_id,omitempty"`
	Type         BusinessType `json:"type" bson:"type"`
	NameOrNumber string       `json:"name_or_number" bson:"name_or_number"`
	Address      *Address     `json:"address,omitempty" bson:"address,omitempty"`
	ContactID    string       `json:"contact_id,omitempty" bson:"contact_id,omitempty"`
	BSID         string       `json:"bsid" bson:"bsid"`
}
