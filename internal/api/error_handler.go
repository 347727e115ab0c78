package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bloodconnect/donor-match-api/internal/core/domain"
)

// errorResponse is the error envelope for all API errors. Error is set on
// 500s only and carries the underlying cause.
type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// domainErrors maps sentinel errors to their HTTP status and client message.
// Order matters: the first match wins.
var domainErrors = []struct {
	err  error
	code int
	msg  string
}{
	{domain.ErrInvalidInput, http.StatusBadRequest, "All fields are required"},
	{domain.ErrInvalidBlood, http.StatusBadRequest, "Blood must be an array of {type, units}"},
	{domain.ErrDonorExists, http.StatusBadRequest, "Donor already exists"},
	{domain.ErrHospitalExists, http.StatusBadRequest, "Hospital already exists"},
	{domain.ErrDonorNotFound, http.StatusBadRequest, "Donor not found"},
	{domain.ErrHospitalNotFound, http.StatusBadRequest, "Hospital not found"},
	{domain.ErrInvalidCredentials, http.StatusBadRequest, "Invalid credentials"},
	{domain.ErrUnauthenticated, http.StatusUnauthorized, "Invalid token"},
	{domain.ErrAdminOnly, http.StatusForbidden, "Access denied: Admins only"},
	{domain.ErrForbidden, http.StatusForbidden, "Access denied"},
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - maps known domain errors first, even when wrapped in an echo.HTTPError;
//   - renders echo.HTTPError as-is, attaching and logging the cause on 5xx;
//   - reports anything else as a 500 "Server error".
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err)
		if code >= http.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
				Msg(body.Message)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, body)
	}
}

func resolveError(err error) (int, errorResponse) {
	for _, m := range domainErrors {
		if errors.Is(err, m.err) {
			return m.code, errorResponse{Message: m.msg}
		}
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		body := errorResponse{Message: fmt.Sprintf("%v", he.Message)}
		if he.Code >= http.StatusInternalServerError && he.Internal != nil {
			body.Error = he.Internal.Error()
		}
		return he.Code, body
	}

	return http.StatusInternalServerError, errorResponse{Message: "Server error", Error: err.Error()}
}
