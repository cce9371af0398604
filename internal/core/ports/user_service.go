package ports

import (
	"context"

	"github.com/opsdesk/business-ops/internal/core/domain"
)

// CreateUserInput carries all data needed to create a user account.
type CreateUserInput struct {
	Name        string
	Email       string
	Role        domain.UserRole
	Phone       string
	Nationality string
	Address     string
	ConfigRoles []domain.ConfigRole
}

// ListUsersResult is returned by UserService.List.
type ListUsersResult struct {
	Items      []*domain.User
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// UserService defines use-case operations for user accounts.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, upd UserUpdate) error
	List(ctx context.Context, filter ListUsersFilter) (*ListUsersResult, error)
	// Delete removes the record permanently; SoftDelete only flips the status
	// so the account disappears from listings but keeps its history.
	Delete(ctx context.Context, id string) error
	SoftDelete(ctx context.Context, id string) error
	ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error
}
