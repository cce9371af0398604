package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/opsdesk/business-ops/internal/core/domain"
	"github.com/opsdesk/business-ops/internal/core/ports"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// UserService implements account management.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

// Create stores a new account after a duplicate-email pre-check. The check is
// query-then-insert, so a concurrent create on the same email can slip
// through; uniqueness is best-effort here, not a database constraint.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	taken, err := s.repo.EmailInUse(ctx, input.Email, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrEmailTaken
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		Role:         input.Role,
		Phone:        input.Phone,
		Nationality:  input.Nationality,
		Address:      input.Address,
		ConfigRoles:  input.ConfigRoles,
		PasswordHash: domain.BootstrapPassword,
		Logins:       0,
		Status:       domain.StatusActive,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		s.log.Error().Err(err).Str("email", input.Email).Msg("failed to create user")
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("user created")
	return created, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies a partial update. An email change re-runs the uniqueness
// pre-check against every other user.
func (s *UserService) Update(ctx context.Context, id string, upd ports.UserUpdate) error {
	if upd.Empty() {
		return domain.ErrNothingToUpdate
	}

	if upd.Email != nil {
		taken, err := s.repo.EmailInUse(ctx, *upd.Email, id)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrEmailTaken
		}
	}

	return s.repo.Update(ctx, id, upd)
}

func (s *UserService) List(ctx context.Context, filter ports.ListUsersFilter) (*ports.ListUsersResult, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	users, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.ListUsersResult{
		Items:      users,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// SoftDelete marks the account deleted without removing the record, so audit
// history and references keep resolving.
func (s *UserService) SoftDelete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.SetStatus(ctx, id, domain.StatusDeleted)
}

// ChangePassword verifies the current credential (the bootstrap rule applies
// to accounts that never logged in) and stores a bcrypt hash of the new one.
// The same write bumps the login counter, permanently retiring the bootstrap
// credential for this account.
func (s *UserService) ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !user.IsBootstrap() {
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
			return domain.ErrInvalidCredentials
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.repo.SetPassword(ctx, id, string(hash)); err != nil {
		return err
	}

	s.log.Info().Str("user_id", id).Msg("password changed")
	return nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}
