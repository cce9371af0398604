package ports

import (
	"context"

	"github.com/opsdesk/business-ops/internal/core/domain"
)

// LoginRuleRepository defines persistence operations for login rules.
type LoginRuleRepository interface {
	Insert(ctx context.Context, rule *domain.LoginRule) (*domain.LoginRule, error)
	// Update replaces the mutable fields of the rule identified by rule.ID.
	Update(ctx context.Context, rule *domain.LoginRule) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*domain.LoginRule, error)
	FindAll(ctx context.Context) ([]domain.LoginRule, error)
	// FindByUser returns every rule naming the user, for restriction
	// evaluation during login.
	FindByUser(ctx context.Context, userID string) ([]domain.LoginRule, error)
}

// AuditLogRepository appends to and reads from the immutable audit trail.
// There is deliberately no update or delete operation.
type AuditLogRepository interface {
	Insert(ctx context.Context, entry *domain.AuditLog) error
	// FindByEntity returns the entries for one entity, newest first.
	FindByEntity(ctx context.Context, entityID string) ([]domain.AuditLog, error)
}
