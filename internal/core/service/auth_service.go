package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/opsdesk/business-ops/internal/core/domain"
	"github.com/opsdesk/business-ops/internal/core/ports"
)

// LoginThrottle abstracts the failed-attempt limiter (Redis).
type LoginThrottle interface {
	// TooMany reports whether the email has exceeded its failure budget.
	TooMany(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// AuthService implements login with restriction evaluation and token issuance.
type AuthService struct {
	users     ports.UserRepository
	rules     ports.LoginRuleRepository
	throttle  LoginThrottle
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	rules ports.LoginRuleRepository,
	throttle LoginThrottle,
	jwtSecret string,
	tokenTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &AuthService{
		users:     users,
		rules:     rules,
		throttle:  throttle,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

// Login authenticates a user. The restriction rules are evaluated after the
// user lookup but before any password comparison, so a denied account gets
// the same refusal whether or not its credentials are valid.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		hot, err := s.throttle.TooMany(ctx, email)
		if err != nil {
			s.log.Warn().Err(err).Str("email", email).Msg("throttle check failed, continuing")
		} else if hot {
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if user.Status == domain.StatusDeleted {
		return "", nil, domain.ErrInvalidCredentials
	}

	rules, err := s.rules.FindByUser(ctx, user.ID)
	if err != nil {
		return "", nil, err
	}
	if domain.LoginDenied(rules, time.Now().UTC()) {
		s.log.Info().Str("user_id", user.ID).Msg("login denied by restriction rule")
		return "", nil, domain.ErrLoginDenied
	}

	if !s.verifyPassword(user, password) {
		s.recordFailure(ctx, email)
		return "", nil, domain.ErrInvalidCredentials
	}
	s.resetThrottle(ctx, email)

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// verifyPassword accepts the well-known bootstrap credential for accounts
// that have never changed their password, and bcrypt otherwise.
func (s *AuthService) verifyPassword(user *domain.User, password string) bool {
	if user.IsBootstrap() {
		return password == domain.BootstrapPassword
	}
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"name":  user.Name,
		"role":  string(user.Role),
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, email); err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("failed to record login failure")
	}
}

func (s *AuthService) resetThrottle(ctx context.Context, email string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.Reset(ctx, email); err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("failed to reset login throttle")
	}
}
