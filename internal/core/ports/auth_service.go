package ports

import (
	"context"

	"github.com/opsdesk/business-ops/internal/core/domain"
)

// AuthService authenticates users and issues bearer tokens.
type AuthService interface {
	// Login verifies the credentials and returns a signed token. Restriction
	// rules are evaluated before the password is checked, so a denied account
	// never learns whether its credentials were otherwise valid.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
