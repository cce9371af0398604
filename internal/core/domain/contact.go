package domain

import "fmt"

// ContactMode is the preferred way of reaching a contact.
type ContactMode string

const (
	ContactModeUnknown  ContactMode = "unknown"
	ContactModeLiveChat ContactMode = "live_chat"
	ContactModeEmail    ContactMode = "email"
	ContactModePhone    ContactMode = "phone"
)

func ParseContactMode(s string) (ContactMode, error) {
	switch ContactMode(s) {
	case ContactModeLiveChat, ContactModeEmail, ContactModePhone, ContactModeUnknown:
		return ContactMode(s), nil
	}
	return ContactModeUnknown, fmt.Errorf("%w: contact mode %q", ErrUnknownEnumValue, s)
}

// ContactLabel tags an individual phone or email entry.
type ContactLabel string

const (
	ContactLabelUnknown ContactLabel = "unknown"
	ContactLabelWork    ContactLabel = "work"
	ContactLabelHome    ContactLabel = "home"
	ContactLabelMobile  ContactLabel = "mobile"
)

func ParseContactLabel(s string) (ContactLabel, error) {
	switch ContactLabel(s) {
	case ContactLabelWork, ContactLabelHome, ContactLabelMobile, ContactLabelUnknown:
		return ContactLabel(s), nil
	}
	return ContactLabelUnknown, fmt.Errorf("%w: contact label %q", ErrUnknownEnumValue, s)
}

// PhoneEntry is a single tagged phone number.
type PhoneEntry struct {
	Value string       `json:"value" bson:"value"`
	Type  ContactLabel `json:"type" bson:"type"`
}

// EmailEntry is a single tagged email address.
type EmailEntry struct {
	Value string       `json:"value" bson:"value"`
	Type  ContactLabel `json:"type" bson:"type"`
}

// Contact is a person record stored independently of any business.
type Contact struct {
	ID          string       `json:"id" bson:"_id,omitempty"`
	FirstName   string       `json:"first_name" bson:"first_name"`
	LastName    string       `json:"last_name" bson:"last_name"`
	Alias       string       `json:"alias,omitempty" bson:"alias,omitempty"`
	Designation string       `json:"designation" bson:"designation"`
	Mode        ContactMode  `json:"mode" bson:"mode"`
	Phones      []PhoneEntry `json:"phones" bson:"phones"`
	Emails      []EmailEntry `json:"emails" bson:"emails"`
	Notes       string       `json:"notes,omitempty" bson:"notes,omitempty"`
}
