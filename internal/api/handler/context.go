package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/studiobill/invoice-system/internal/core/domain"
)

// ctxActor extracts the auth claims injected by the Auth middleware into
// a domain.Actor, with a fast-fail check before any service call:
//   - user_id and role must be non-empty (presence proves the middleware
//     ran and the token carried an identity).
//   - managed_by may legitimately be empty: super admins, admins and
//     unmanaged members all carry no manager.
func ctxActor(c echo.Context) (domain.Actor, error) {
	id, _ := c.Get("user_id").(string)
	roleStr, _ := c.Get("role").(string)
	if id == "" || roleStr == "" {
		return domain.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	role := domain.Role(roleStr)
	if !role.Valid() {
		return domain.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "unknown role claim")
	}

	managedBy, _ := c.Get("managed_by").(string)
	return domain.Actor{ID: id, Role: role, ManagedBy: managedBy}, nil
}
