package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloodconnect/donor-match-api/internal/core/domain"
)

// Forbidden is the rejection for a principal of the wrong role. It matches
// domain.ErrForbidden.
func Forbidden() error {
	return echo.NewHTTPError(http.StatusForbidden, "Access denied").SetInternal(domain.ErrForbidden)
}

// AdminOnly is the rejection for a principal without the admin flag. It
// matches domain.ErrAdminOnly and domain.ErrForbidden.
func AdminOnly() error {
	return echo.NewHTTPError(http.StatusForbidden, "Access denied: Admins only").SetInternal(domain.ErrAdminOnly)
}

// RequireRole lets through principals of the given role. Must run after Auth.
func RequireRole(role domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := PrincipalFrom(c)
			if !ok || p.Role() != role {
				return Forbidden()
			}
			return next(c)
		}
	}
}

// RequireAdmin lets through hospital principals carrying the admin flag.
// It is a capability check, not a re-authentication.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := PrincipalFrom(c)
			if !ok || !domain.IsHospitalAdmin(p) {
				return AdminOnly()
			}
			return next(c)
		}
	}
}
