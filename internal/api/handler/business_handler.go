package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/opsdesk/business-ops/internal/api/metrics"
	"github.com/opsdesk/business-ops/internal/core/domain"
	"github.com/opsdesk/business-ops/internal/core/ports"
)

// BusinessHandler handles HTTP requests for business records.
type BusinessHandler struct {
	service ports.BusinessService
}

func NewBusinessHandler(service ports.BusinessService) *BusinessHandler {
	return &BusinessHandler{service: service}
}

// Create handles POST /v1/businesses.
//
// @Summary      Create a business
// @Tags         businesses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBusinessRequest  true  "Business details, optionally with an inline contact"
// @Success      201   {object}  domain.Business
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/businesses [post]
func (h *BusinessHandler) Create(c echo.Context) error {
	var req createBusinessRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input, err := toCreateBusinessInput(req)
	if err != nil {
		return err
	}

	business, err := h.service.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	metrics.BusinessesCreatedTotal.WithLabelValues(string(business.Type)).Inc()
	return c.JSON(http.StatusCreated, business)
}

// List handles GET /v1/businesses.
//
// @Summary      List businesses
// @Tags         businesses
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Match on name, BSID, or contact names/emails/phones"
// @Param        type    query     string  false  "Business type filter"
// @Param        page    query     int     false  "Page number (1-based)"
// @Param        limit   query     int     false  "Rows per page"
// @Success      200     {object}  listBusinessesResponse
// @Router       /v1/businesses [get]
func (h *BusinessHandler) List(c echo.Context) error {
	input := ports.ListBusinessesInput{
		Search: c.QueryParam("search"),
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
	}
	if t := c.QueryParam("type"); t != "" {
		parsed, err := domain.ParseBusinessType(t)
		if err != nil {
			return err
		}
		input.Type = parsed
	}

	result, err := h.service.List(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listBusinessesResponse{
		Data: result.Items,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// Get handles GET /v1/businesses/:id, joining the contact when it resolves.
func (h *BusinessHandler) Get(c echo.Context) error {
	detail, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, businessDetailResponse{
		Business: detail.Business,
		Contact:  detail.Contact,
	})
}
