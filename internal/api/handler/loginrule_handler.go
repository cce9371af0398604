package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/opsdesk/business-ops/internal/api/metrics"
	"github.com/opsdesk/business-ops/internal/core/domain"
	"github.com/opsdesk/business-ops/internal/core/ports"
)

// LoginRuleHandler handles HTTP requests for login restriction rules.
type LoginRuleHandler struct {
	service ports.LoginRuleService
}

func NewLoginRuleHandler(service ports.LoginRuleService) *LoginRuleHandler {
	return &LoginRuleHandler{service: service}
}

// Create handles POST /v1/login-rules.
//
// @Summary      Create a login rule
// @Tags         login-rules
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ruleRequest  true  "Rule details"
// @Success      201   {object}  ruleResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/login-rules [post]
func (h *LoginRuleHandler) Create(c echo.Context) error {
	input, actor, err := h.bindRule(c)
	if err != nil {
		return err
	}

	rule, err := h.service.Create(c.Request().Context(), input, actor)
	if err != nil {
		return err
	}

	metrics.RuleMutationsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, toRuleResponse(*rule, ""))
}

// Update handles POST /v1/login-rules/:id.
func (h *LoginRuleHandler) Update(c echo.Context) error {
	input, actor, err := h.bindRule(c)
	if err != nil {
		return err
	}

	if err := h.service.Update(c.Request().Context(), c.Param("id"), input, actor); err != nil {
		return err
	}

	metrics.RuleMutationsTotal.WithLabelValues("updated").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Delete handles POST /v1/login-rules/delete/:id.
func (h *LoginRuleHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), actor); err != nil {
		return err
	}

	metrics.RuleMutationsTotal.WithLabelValues("deleted").Inc()
	return c.NoContent(http.StatusNoContent)
}

// List handles GET /v1/login-rules.
//
// @Summary      List login rules
// @Tags         login-rules
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Match on the restricted user's email"
// @Param        page    query     int     false  "Page number (1-based)"
// @Param        limit   query     int     false  "Rows per page"
// @Success      200     {object}  listRulesResponse
// @Router       /v1/login-rules [get]
func (h *LoginRuleHandler) List(c echo.Context) error {
	result, err := h.service.List(c.Request().Context(), ports.ListRulesInput{
		Search: c.QueryParam("search"),
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
	})
	if err != nil {
		return err
	}

	items := make([]ruleResponse, len(result.Items))
	for i, r := range result.Items {
		items[i] = toRuleResponse(r.LoginRule, r.UserEmail)
	}

	return c.JSON(http.StatusOK, listRulesResponse{
		Data: items,
		Pagination: paginationResponse{
			Total: int64(result.Total),
			Page:  result.Page,
			Limit: result.Limit,
		},
	})
}

// History handles GET /v1/login-rules/:id/history, returning the audit trail
// newest first.
func (h *LoginRuleHandler) History(c echo.Context) error {
	entries, err := h.service.History(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []domain.AuditLog{}
	}
	return c.JSON(http.StatusOK, ruleHistoryResponse{Data: entries})
}

func (h *LoginRuleHandler) bindRule(c echo.Context) (ports.RuleInput, ports.ActorInput, error) {
	var req ruleRequest
	if err := c.Bind(&req); err != nil {
		return ports.RuleInput{}, ports.ActorInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return ports.RuleInput{}, ports.ActorInput{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	restriction, err := domain.ParseRestriction(req.Restriction)
	if err != nil {
		return ports.RuleInput{}, ports.ActorInput{}, err
	}

	actor, err := ctxActor(c)
	if err != nil {
		return ports.RuleInput{}, ports.ActorInput{}, err
	}

	return ports.RuleInput{
		UserID:      req.UserID,
		Restriction: restriction,
		FromDate:    req.FromDate,
		ToDate:      req.ToDate,
	}, actor, nil
}

func toRuleResponse(r domain.LoginRule, email string) ruleResponse {
	return ruleResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		UserEmail:   email,
		Restriction: string(r.Restriction),
		FromDate:    r.FromDate,
		ToDate:      r.ToDate,
	}
}
