package ports

import (
	"context"

	"github.com/opsdesk/business-ops/internal/core/domain"
)

// UserUpdate carries a partial update: nil fields are left untouched.
type UserUpdate struct {
	Name        *string
	Email       *string
	Role        *domain.UserRole
	Phone       *string
	Nationality *string
	Address     *string
	ConfigRoles []domain.ConfigRole
}

// Empty reports whether the update would touch nothing.
func (u UserUpdate) Empty() bool {
	return u.Name == nil && u.Email == nil && u.Role == nil &&
		u.Phone == nil && u.Nationality == nil && u.Address == nil &&
		len(u.ConfigRoles) == 0
}

// ListUsersFilter carries query parameters for listing users. Soft-deleted
// users are always excluded by the repository.
type ListUsersFilter struct {
	Search      string          // optional: case-insensitive match on name, email or phone
	Role        domain.UserRole // optional: exact role; Unknown means no filter
	Nationality string          // optional: case-insensitive match
	Page        int             // 1-based
	Limit       int             // rows per page
}

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByIDs(ctx context.Context, ids []string) ([]*domain.User, error)
	// EmailInUse reports whether another user (any except excludeID) already
	// holds this email. It is a pre-check, not a constraint: two concurrent
	// writers can both pass it.
	EmailInUse(ctx context.Context, email, excludeID string) (bool, error)
	Update(ctx context.Context, id string, upd UserUpdate) error
	List(ctx context.Context, filter ListUsersFilter) ([]*domain.User, int64, error)
	Delete(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id string, status domain.UserStatus) error
	// SetPassword stores the new hash and increments the login counter in the
	// same write, retiring the bootstrap credential.
	SetPassword(ctx context.Context, id, hash string) error
}
