package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/opsdesk/business-ops/internal/core/domain"
	"github.com/opsdesk/business-ops/internal/core/ports"
)

func TestUserService_Create(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name:  "Alice",
		Email: "alice@example.com",
		Role:  domain.RoleStaff,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if user.PasswordHash != domain.BootstrapPassword {
		t.Fatalf("new accounts start on the bootstrap credential, got %q", user.PasswordHash)
	}
	if user.Status != domain.StatusActive {
		t.Fatalf("expected active status, got %q", user.Status)
	}
}

func TestUserService_CreateDuplicateEmail(t *testing.T) {
	repo := newStubUserRepo(&domain.User{ID: "u1", Email: "taken@example.com"})
	svc := NewUserService(repo, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateUserInput{Name: "X", Email: "taken@example.com"})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserService_UpdateEmptyIsRejected(t *testing.T) {
	repo := newStubUserRepo(&domain.User{ID: "u1", Email: "a@example.com"})
	svc := NewUserService(repo, zerolog.Nop())

	if err := svc.Update(context.Background(), "u1", ports.UserUpdate{}); !errors.Is(err, domain.ErrNothingToUpdate) {
		t.Fatalf("expected ErrNothingToUpdate, got %v", err)
	}
}

func TestUserService_UpdateEmailConflict(t *testing.T) {
	repo := newStubUserRepo(
		&domain.User{ID: "u1", Email: "a@example.com"},
		&domain.User{ID: "u2", Email: "b@example.com"},
	)
	svc := NewUserService(repo, zerolog.Nop())

	taken := "b@example.com"
	if err := svc.Update(context.Background(), "u1", ports.UserUpdate{Email: &taken}); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	// Re-submitting your own email is not a conflict.
	own := "a@example.com"
	if err := svc.Update(context.Background(), "u1", ports.UserUpdate{Email: &own}); err != nil {
		t.Fatalf("own email should not conflict: %v", err)
	}
}

func TestUserService_SoftDelete(t *testing.T) {
	repo := newStubUserRepo(&domain.User{ID: "u1", Email: "a@example.com", Status: domain.StatusActive})
	svc := NewUserService(repo, zerolog.Nop())

	if err := svc.SoftDelete(context.Background(), "u1"); err != nil {
		t.Fatalf("soft delete failed: %v", err)
	}
	if repo.byID["u1"].Status != domain.StatusDeleted {
		t.Fatalf("expected deleted status, got %q", repo.byID["u1"].Status)
	}

	if err := svc.SoftDelete(context.Background(), "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_ChangePasswordBootstrap(t *testing.T) {
	repo := newStubUserRepo(&domain.User{
		ID: "u1", Email: "a@example.com",
		PasswordHash: domain.BootstrapPassword, Logins: 0,
	})
	svc := NewUserService(repo, zerolog.Nop())

	// Bootstrap accounts change their password without knowing any current one.
	if err := svc.ChangePassword(context.Background(), "u1", "", "newpass"); err != nil {
		t.Fatalf("bootstrap change failed: %v", err)
	}

	u := repo.byID["u1"]
	if u.Logins != 1 {
		t.Fatalf("login counter should be bumped, got %d", u.Logins)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("newpass")) != nil {
		t.Fatalf("stored hash does not match the new password")
	}

	// After the change the bootstrap rule no longer applies.
	if err := svc.ChangePassword(context.Background(), "u1", "wrong", "again"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if err := svc.ChangePassword(context.Background(), "u1", "newpass", "again"); err != nil {
		t.Fatalf("change with correct current password failed: %v", err)
	}
}
