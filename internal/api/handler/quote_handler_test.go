package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/opsdesk/business-ops/internal/core/domain"
	"github.com/opsdesk/business-ops/internal/core/ports"
	"github.com/opsdesk/business-ops/internal/core/service"
)

type stubQuoteRepoNoop struct{}

func (stubQuoteRepoNoop) Insert(_ context.Context, q *domain.Quote) (*domain.Quote, error) {
	clone := *q
	clone.ID = "q1"
	return &clone, nil
}

func (stubQuoteRepoNoop) List(_ context.Context, _ ports.ListQuotesFilter) ([]*domain.Quote, int64, error) {
	return nil, 0, nil
}

func (stubQuoteRepoNoop) MaxQSIDNumber(_ context.Context) (int64, error) { return 0, nil }

// Calculate is pure, so the handler test runs the real service against the
// real calculator and only stubs persistence.
func TestQuoteHandler_Calculate(t *testing.T) {
	e := newTestEcho()
	svc := service.NewQuoteService(stubQuoteRepoNoop{}, nil, nil, zerolog.Nop())
	h := NewQuoteHandler(svc)

	body := `{
		"lines": [
			{"service": "setup", "amount": "100"},
			{"service": "accounting", "amount": "50"}
		],
		"discount_percentage": "10",
		"vat_percentage": "20"
	}`
	req := httptest.NewRequest(http.MethodPost, "/v1/quotes/calc", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Calculate(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Subtotal       string `json:"subtotal"`
		DiscountAmount string `json:"discount_amount"`
		VATAmount      string `json:"vat_amount"`
		Total          string `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Subtotal != "150" || resp.DiscountAmount != "15" || resp.VATAmount != "27" || resp.Total != "162" {
		t.Fatalf("unexpected totals: %+v", resp)
	}
}

func TestQuoteHandler_Calculate_MissingAmount(t *testing.T) {
	e := newTestEcho()
	svc := service.NewQuoteService(stubQuoteRepoNoop{}, nil, nil, zerolog.Nop())
	h := NewQuoteHandler(svc)

	body := `{"lines": [{"service": "setup"}]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/quotes/calc", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Calculate(c)
	if err == nil {
		t.Fatalf("expected error for missing amount")
	}
	if !strings.Contains(err.Error(), "line 0") {
		t.Fatalf("error should name the offending line, got %v", err)
	}
}

func TestQuoteHandler_Calculate_UnknownService(t *testing.T) {
	e := newTestEcho()
	svc := service.NewQuoteService(stubQuoteRepoNoop{}, nil, nil, zerolog.Nop())
	h := NewQuoteHandler(svc)

	body := `{"lines": [{"service": "landscaping", "amount": "10"}]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/quotes/calc", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Calculate(c)
	if err == nil {
		t.Fatalf("expected error for unknown service kind")
	}
}
