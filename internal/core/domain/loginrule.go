package domain

import (
	"fmt"
	"time"
)

// Restriction is the kind of a login rule.
type Restriction string

const (
	RestrictionUnknown Restriction = "unknown"
	RestrictionDeny    Restriction = "deny"
	RestrictionAllow   Restriction = "allow"
)

// ParseRestriction maps a wire string to a Restriction, rejecting anything
// outside the closed set.
func ParseRestriction(s string) (Restriction, error) {
	switch Restriction(s) {
	case RestrictionDeny, RestrictionAllow, RestrictionUnknown:
		return Restriction(s), nil
	}
	return RestrictionUnknown, fmt.Errorf("%w: restriction %q", ErrUnknownEnumValue, s)
}

// LoginRule restricts when a single user may log in. Either window bound may
// be nil, meaning unbounded on that side; a deny rule with both bounds nil is
// a permanent deny.
type LoginRule struct {
	ID          string      `json:"id" bson:"_id,omitempty"`
	UserID      string      `json:"user_id" bson:"user_id"`
	Restriction Restriction `json:"restriction" bson:"restriction"`
	FromDate    *time.Time  `json:"from_date,omitempty" bson:"from_date,omitempty"`
	ToDate      *time.Time  `json:"to_date,omitempty" bson:"to_date,omitempty"`
}

// ActiveAt reports whether the rule's window contains the instant. Both
// bounds are inclusive.
func (r LoginRule) ActiveAt(at time.Time) bool {
	if r.FromDate != nil && r.FromDate.After(at) {
		return false
	}
	if r.ToDate != nil && r.ToDate.Before(at) {
		return false
	}
	return true
}

// LoginDenied decides whether a login attempt at the given instant must be
// refused, given every rule that names the user. Any single deny rule whose
// window contains the instant is sufficient; allow rules are currently inert
// and never override a deny. An empty rule set allows the login.
func LoginDenied(rules []LoginRule, at time.Time) bool {
	for _, r := range rules {
		if r.Restriction == RestrictionDeny && r.ActiveAt(at) {
			return true
		}
	}
	return false
}
