package ports

import (
	"context"
	"time"

	"github.com/opsdesk/business-ops/internal/core/domain"
)

// ActorInput identifies the authenticated user performing an administrative
// action, snapshotted into audit entries.
type ActorInput struct {
	ID   string
	Name string
}

// RuleInput carries the fields for creating or updating a login rule.
type RuleInput struct {
	UserID      string
	Restriction domain.Restriction
	FromDate    *time.Time
	ToDate      *time.Time
}

// RuleWithUser is a rule enriched with the email of the user it restricts.
type RuleWithUser struct {
	domain.LoginRule
	UserEmail string
}

// ListRulesInput carries parameters for the rule listing endpoint.
type ListRulesInput struct {
	Search string // optional: substring match on the enriched user email
	Page   int
	Limit  int
}

// ListRulesResult is returned by LoginRuleService.List.
type ListRulesResult struct {
	Items []RuleWithUser
	Total int
	Page  int
	Limit int
}

// LoginRuleService defines administrative operations on login rules. Every
// mutation appends an audit entry.
type LoginRuleService interface {
	Create(ctx context.Context, input RuleInput, actor ActorInput) (*domain.LoginRule, error)
	Update(ctx context.Context, id string, input RuleInput, actor ActorInput) error
	Delete(ctx context.Context, id string, actor ActorInput) error
	List(ctx context.Context, input ListRulesInput) (*ListRulesResult, error)
	History(ctx context.Context, ruleID string) ([]domain.AuditLog, error)
}
