package handler

import (
	"time"

	"github.com/opsdesk/business-ops/internal/core/domain"
)

type ruleRequest struct {
	UserID      string     `json:"user_id"     validate:"required"`
	Restriction string     `json:"restriction" validate:"required"`
	FromDate    *time.Time `json:"from_date"`
	ToDate      *time.Time `json:"to_date"`
}

type ruleResponse struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	UserEmail   string     `json:"user_email,omitempty"`
	Restriction string     `json:"restriction"`
	FromDate    *time.Time `json:"from_date,omitempty"`
	ToDate      *time.Time `json:"to_date,omitempty"`
}

type listRulesResponse struct {
	Data       []ruleResponse     `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

type ruleHistoryResponse struct {
	Data []domain.AuditLog `json:"data"`
}
