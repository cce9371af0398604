package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/opsdesk/business-ops/internal/core/ports"
)

// ctxActor extracts the authenticated identity injected by the Auth
// middleware. A missing user_id means the middleware never ran on this
// route, which is a wiring bug surfaced as 401 rather than a panic.
func ctxActor(c echo.Context) (ports.ActorInput, error) {
	id, _ := c.Get("user_id").(string)
	if id == "" {
		return ports.ActorInput{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	name, _ := c.Get("name").(string)
	return ports.ActorInput{ID: id, Name: name}, nil
}
