package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/opsdesk/business-ops/internal/core/domain"
	"github.com/opsdesk/business-ops/internal/core/ports"
)

// LoginRuleService implements administrative rule management. Every mutation
// appends an entry to the audit trail; an audit write failure is logged and
// swallowed so it never rolls back the mutation itself.
type LoginRuleService struct {
	rules ports.LoginRuleRepository
	users ports.UserRepository
	audit ports.AuditLogRepository
	log   zerolog.Logger
}

func NewLoginRuleService(
	rules ports.LoginRuleRepository,
	users ports.UserRepository,
	audit ports.AuditLogRepository,
	log zerolog.Logger,
) *LoginRuleService {
	return &LoginRuleService{rules: rules, users: users, audit: audit, log: log}
}

func (s *LoginRuleService) Create(ctx context.Context, input ports.RuleInput, actor ports.ActorInput) (*domain.LoginRule, error) {
	user, err := s.users.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	rule := &domain.LoginRule{
		UserID:      input.UserID,
		Restriction: input.Restriction,
		FromDate:    input.FromDate,
		ToDate:      input.ToDate,
	}

	created, err := s.rules.Insert(ctx, rule)
	if err != nil {
		return nil, err
	}

	s.writeAudit(ctx, domain.AuditActionCreated, created.ID,
		&domain.EntityRef{ID: created.ID, Name: user.Email}, actor,
		fmt.Sprintf("Created login rule for user %s with restriction %s", user.Email, created.Restriction))

	s.log.Info().Str("rule_id", created.ID).Str("user_id", user.ID).
		Str("restriction", string(created.Restriction)).Msg("login rule created")

	return created, nil
}

func (s *LoginRuleService) Update(ctx context.Context, id string, input ports.RuleInput, actor ports.ActorInput) error {
	if _, err := s.rules.FindByID(ctx, id); err != nil {
		return err
	}
	user, err := s.users.FindByID(ctx, input.UserID)
	if err != nil {
		return err
	}

	rule := &domain.LoginRule{
		ID:          id,
		UserID:      input.UserID,
		Restriction: input.Restriction,
		FromDate:    input.FromDate,
		ToDate:      input.ToDate,
	}
	if err := s.rules.Update(ctx, rule); err != nil {
		return err
	}

	s.writeAudit(ctx, domain.AuditActionUpdated, id,
		&domain.EntityRef{ID: id, Name: user.Email}, actor,
		fmt.Sprintf("Updated login rule for user %s with restriction %s", user.Email, input.Restriction))

	return nil
}

func (s *LoginRuleService) Delete(ctx context.Context, id string, actor ports.ActorInput) error {
	if _, err := s.rules.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.rules.Delete(ctx, id); err != nil {
		return err
	}

	s.writeAudit(ctx, domain.AuditActionDeleted, id, nil, actor,
		fmt.Sprintf("Deleted login rule with ID %s", id))

	return nil
}

// List returns all rules enriched with the restricted user's email, filtered
// by the search term and paginated. Filtering happens after enrichment
// because the search target is the joined email, not a stored field.
func (s *LoginRuleService) List(ctx context.Context, input ports.ListRulesInput) (*ports.ListRulesResult, error) {
	input.Page, input.Limit = normalizePage(input.Page, input.Limit)

	rules, err := s.rules.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(rules))
	seen := make(map[string]struct{}, len(rules))
	for _, r := range rules {
		if _, ok := seen[r.UserID]; !ok {
			seen[r.UserID] = struct{}{}
			ids = append(ids, r.UserID)
		}
	}

	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	emails := make(map[string]string, len(users))
	for _, u := range users {
		emails[u.ID] = u.Email
	}

	enriched := make([]ports.RuleWithUser, 0, len(rules))
	for _, r := range rules {
		email, ok := emails[r.UserID]
		if !ok {
			email = "Unknown"
		}
		if input.Search != "" && !strings.Contains(strings.ToLower(email), strings.ToLower(input.Search)) {
			continue
		}
		enriched = append(enriched, ports.RuleWithUser{LoginRule: r, UserEmail: email})
	}

	total := len(enriched)
	start := (input.Page - 1) * input.Limit
	if start > total {
		start = total
	}
	end := start + input.Limit
	if end > total {
		end = total
	}

	return &ports.ListRulesResult{
		Items: enriched[start:end],
		Total: total,
		Page:  input.Page,
		Limit: input.Limit,
	}, nil
}

func (s *LoginRuleService) History(ctx context.Context, ruleID string) ([]domain.AuditLog, error) {
	return s.audit.FindByEntity(ctx, ruleID)
}

func (s *LoginRuleService) writeAudit(ctx context.Context, action, entityID string, target *domain.EntityRef, actor ports.ActorInput, description string) {
	now := time.Now().UTC()
	entry := &domain.AuditLog{
		EntityType:  domain.AuditEntityLoginRule,
		EntityID:    entityID,
		Target:      target,
		Action:      action,
		Description: description,
		Timestamp:   now,
	}
	if actor.ID != "" {
		entry.PerformedBy = &domain.Actor{ID: actor.ID, Name: actor.Name, Timestamp: now}
	}

	if err := s.audit.Insert(ctx, entry); err != nil {
		s.log.Warn().Err(err).Str("entity_id", entityID).Str("action", action).
			Msg("failed to write audit entry")
	}
}
