package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kreker0001/TimeJobs/internal/core/domain"
)

// ctxActor extracts the auth claims injected by the Auth middleware into a
// domain.Actor and fast-fails before any service call: a route behind Auth
// must always carry a user id and role.
func ctxActor(c echo.Context) (domain.Actor, error) {
	id, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	if id == "" || role == "" {
		return domain.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return domain.Actor{ID: id, Role: domain.Role(role)}, nil
}

// ctxViewer is the lenient variant for routes behind OptionalAuth: missing
// claims yield the anonymous actor instead of an error.
func ctxViewer(c echo.Context) domain.Actor {
	id, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	return domain.Actor{ID: id, Role: domain.Role(role)}
}
