package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/opsdesk/business-ops/internal/core/domain"
	"github.com/opsdesk/business-ops/internal/core/ports"
)

type stubAuditRepo struct {
	entries []domain.AuditLog
	fail    bool
}

func (r *stubAuditRepo) Insert(_ context.Context, entry *domain.AuditLog) error {
	if r.fail {
		return errors.New("audit store down")
	}
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *stubAuditRepo) FindByEntity(_ context.Context, entityID string) ([]domain.AuditLog, error) {
	var out []domain.AuditLog
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].EntityID == entityID {
			out = append(out, r.entries[i])
		}
	}
	return out, nil
}

func ruleServiceFixture(audit *stubAuditRepo) (*LoginRuleService, *stubRuleRepo, *stubUserRepo) {
	users := newStubUserRepo(
		&domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com", Status: domain.StatusActive},
		&domain.User{ID: "u2", Name: "Bob", Email: "bob@example.com", Status: domain.StatusActive},
	)
	rules := &stubRuleRepo{}
	return NewLoginRuleService(rules, users, audit, zerolog.Nop()), rules, users
}

var admin = ports.ActorInput{ID: "admin-1", Name: "Root Admin"}

func TestLoginRuleService_CreateWritesAudit(t *testing.T) {
	audit := &stubAuditRepo{}
	svc, _, _ := ruleServiceFixture(audit)

	rule, err := svc.Create(context.Background(), ports.RuleInput{
		UserID:      "u1",
		Restriction: domain.RestrictionDeny,
	}, admin)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if len(audit.entries) != 1 {
		t.Fatalf("expected 1 audit entry, got %d", len(audit.entries))
	}
	entry := audit.entries[0]
	if entry.Action != domain.AuditActionCreated {
		t.Fatalf("unexpected action %q", entry.Action)
	}
	if entry.EntityType != domain.AuditEntityLoginRule || entry.EntityID != rule.ID {
		t.Fatalf("audit entry does not reference the rule: %+v", entry)
	}
	if entry.Target == nil || entry.Target.Name != "alice@example.com" {
		t.Fatalf("expected target snapshot with user email, got %+v", entry.Target)
	}
	if entry.PerformedBy == nil || entry.PerformedBy.ID != "admin-1" {
		t.Fatalf("expected performer snapshot, got %+v", entry.PerformedBy)
	}
}

func TestLoginRuleService_CreateUnknownUser(t *testing.T) {
	svc, rules, _ := ruleServiceFixture(&stubAuditRepo{})

	if _, err := svc.Create(context.Background(), ports.RuleInput{UserID: "ghost"}, admin); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if len(rules.rules) != 0 {
		t.Fatalf("no rule should have been stored")
	}
}

func TestLoginRuleService_AuditFailureIsNonFatal(t *testing.T) {
	audit := &stubAuditRepo{fail: true}
	svc, rules, _ := ruleServiceFixture(audit)

	if _, err := svc.Create(context.Background(), ports.RuleInput{
		UserID:      "u1",
		Restriction: domain.RestrictionDeny,
	}, admin); err != nil {
		t.Fatalf("audit failure must not fail the mutation: %v", err)
	}
	if len(rules.rules) != 1 {
		t.Fatalf("rule should have been stored despite audit failure")
	}
}

func TestLoginRuleService_UpdateAndDeleteWriteAudit(t *testing.T) {
	audit := &stubAuditRepo{}
	svc, _, _ := ruleServiceFixture(audit)

	rule, err := svc.Create(context.Background(), ports.RuleInput{
		UserID:      "u1",
		Restriction: domain.RestrictionDeny,
	}, admin)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	from := time.Now().UTC()
	if err := svc.Update(context.Background(), rule.ID, ports.RuleInput{
		UserID:      "u2",
		Restriction: domain.RestrictionAllow,
		FromDate:    &from,
	}, admin); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if err := svc.Delete(context.Background(), rule.ID, admin); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	history, err := svc.History(context.Background(), rule.ID)
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("expected 3 audit entries, got %d", len(history))
	}
	// Newest first.
	if history[0].Action != domain.AuditActionDeleted || history[2].Action != domain.AuditActionCreated {
		t.Fatalf("history out of order: %v, %v, %v", history[0].Action, history[1].Action, history[2].Action)
	}
}

func TestLoginRuleService_UpdateMissingRule(t *testing.T) {
	svc, _, _ := ruleServiceFixture(&stubAuditRepo{})

	err := svc.Update(context.Background(), "nope", ports.RuleInput{UserID: "u1"}, admin)
	if !errors.Is(err, domain.ErrRuleNotFound) {
		t.Fatalf("expected ErrRuleNotFound, got %v", err)
	}
}

func TestLoginRuleService_ListEnrichesAndFilters(t *testing.T) {
	svc, rules, _ := ruleServiceFixture(&stubAuditRepo{})
	rules.rules = []domain.LoginRule{
		{ID: "r1", UserID: "u1", Restriction: domain.RestrictionDeny},
		{ID: "r2", UserID: "u2", Restriction: domain.RestrictionAllow},
		{ID: "r3", UserID: "orphan", Restriction: domain.RestrictionDeny},
	}

	all, err := svc.List(context.Background(), ports.ListRulesInput{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if all.Total != 3 {
		t.Fatalf("expected total 3, got %d", all.Total)
	}
	byID := map[string]string{}
	for _, item := range all.Items {
		byID[item.ID] = item.UserEmail
	}
	if byID["r1"] != "alice@example.com" || byID["r3"] != "Unknown" {
		t.Fatalf("unexpected enrichment: %v", byID)
	}

	filtered, err := svc.List(context.Background(), ports.ListRulesInput{Search: "ALICE", Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("filtered list failed: %v", err)
	}
	if filtered.Total != 1 || filtered.Items[0].ID != "r1" {
		t.Fatalf("search should match case-insensitively on email: %+v", filtered)
	}
}

func TestLoginRuleService_ListPaginates(t *testing.T) {
	svc, rules, _ := ruleServiceFixture(&stubAuditRepo{})
	for i := 0; i < 5; i++ {
		rules.rules = append(rules.rules, domain.LoginRule{
			ID: string(rune('a' + i)), UserID: "u1", Restriction: domain.RestrictionDeny,
		})
	}

	page2, err := svc.List(context.Background(), ports.ListRulesInput{Page: 2, Limit: 2})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page2.Total != 5 || len(page2.Items) != 2 {
		t.Fatalf("expected page of 2 from 5, got %d of %d", len(page2.Items), page2.Total)
	}

	beyond, err := svc.List(context.Background(), ports.ListRulesInput{Page: 9, Limit: 2})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(beyond.Items) != 0 {
		t.Fatalf("page beyond the end should be empty, got %d items", len(beyond.Items))
	}
}
