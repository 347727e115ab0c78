package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bloodconnect/donor-match-api/internal/core/domain"
	"github.com/bloodconnect/donor-match-api/internal/core/ports"
)

// HeaderAuthorization carries the raw claim token. A "Bearer " prefix is tolerated.
const HeaderAuthorization = "Authorization"

const principalKey = "principal"

// Auth validates the claim token and injects the decoded principal into context.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := strings.TrimSpace(c.Request().Header.Get(HeaderAuthorization))
			if len(raw) > 7 && strings.EqualFold(raw[:7], "bearer ") {
				raw = strings.TrimSpace(raw[7:])
			}
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "No token provided")
			}

			principal, err := verifier.Verify(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

// PrincipalFrom returns the principal stored by Auth.
func PrincipalFrom(c echo.Context) (domain.Principal, bool) {
	p, ok := c.Get(principalKey).(domain.Principal)
	return p, ok && p != nil
}

// SetPrincipal stores p the way Auth does. Used by tests of downstream handlers.
func SetPrincipal(c echo.Context, p domain.Principal) {
	c.Set(principalKey, p)
}
