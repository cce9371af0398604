package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/opsdesk/business-ops/internal/api/metrics"
	"github.com/opsdesk/business-ops/internal/core/domain"
	"github.com/opsdesk/business-ops/internal/core/ports"
)

// QuoteHandler handles HTTP requests for quote operations.
type QuoteHandler struct {
	service ports.QuoteService
}

func NewQuoteHandler(service ports.QuoteService) *QuoteHandler {
	return &QuoteHandler{service: service}
}

// Calculate handles POST /v1/quotes/calc: the pure calculation endpoint.
// Nothing is persisted and no reference number is consumed.
//
// @Summary      Calculate quote totals
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      calculateQuoteRequest  true  "Lines and percentages"
// @Success      200   {object}  domain.QuoteTotals
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/quotes/calc [post]
func (h *QuoteHandler) Calculate(c echo.Context) error {
	var req calculateQuoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	lines, err := toQuoteLines(req.Lines)
	if err != nil {
		return err
	}

	totals, err := h.service.Calculate(ports.CalculateQuoteInput{
		Lines:              lines,
		DiscountPercentage: req.DiscountPercentage,
		VATPercentage:      req.VATPercentage,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, totals)
}

// Create handles POST /v1/quotes.
//
// @Summary      Create a quote
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createQuoteRequest  true  "Quote details; totals are computed server-side"
// @Success      201   {object}  domain.Quote
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/quotes [post]
func (h *QuoteHandler) Create(c echo.Context) error {
	var req createQuoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	lines, err := toQuoteLines(req.Lines)
	if err != nil {
		return err
	}

	quote, err := h.service.Create(c.Request().Context(), ports.CreateQuoteInput{
		BusinessID:         req.BusinessID,
		Date:               req.Date,
		FirstResponseTeam:  req.FirstResponseTeam,
		Lines:              lines,
		DiscountPercentage: req.DiscountPercentage,
		VATPercentage:      req.VATPercentage,
	})
	if err != nil {
		return err
	}

	metrics.QuotesCreatedTotal.Inc()
	total, _ := quote.Total.Float64()
	metrics.QuoteTotalAmount.Observe(total)
	return c.JSON(http.StatusCreated, quote)
}

// List handles GET /v1/quotes.
//
// @Summary      List quotes
// @Tags         quotes
// @Produce      json
// @Security     BearerAuth
// @Param        team    query     string  false  "Exact first_response_team filter"
// @Param        search  query     string  false  "Match on the enriched business name"
// @Param        page    query     int     false  "Page number (1-based)"
// @Param        limit   query     int     false  "Rows per page"
// @Success      200     {object}  listQuotesResponse
// @Router       /v1/quotes [get]
func (h *QuoteHandler) List(c echo.Context) error {
	result, err := h.service.List(c.Request().Context(), ports.ListQuotesInput{
		Team:   c.QueryParam("team"),
		Search: c.QueryParam("search"),
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
	})
	if err != nil {
		return err
	}

	items := make([]quoteResponse, len(result.Items))
	for i, q := range result.Items {
		items[i] = quoteResponse{Quote: q.Quote, BusinessName: q.BusinessName}
	}

	return c.JSON(http.StatusOK, listQuotesResponse{
		Data: items,
		Pagination: paginationResponse{
			Total: result.Total,
			Page:  result.Page,
			Limit: result.Limit,
		},
	})
}

func toQuoteLines(lines []quoteLineRequest) ([]ports.QuoteLineInput, error) {
	out := make([]ports.QuoteLineInput, len(lines))
	for i, l := range lines {
		service, err := domain.ParseQuoteService(l.Service)
		if err != nil {
			return nil, err
		}
		out[i] = ports.QuoteLineInput{
			Service:     service,
			Description: l.Description,
			Amount:      l.Amount,
		}
	}
	return out, nil
}
