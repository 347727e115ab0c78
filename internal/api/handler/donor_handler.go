package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloodconnect/donor-match-api/internal/api/middleware"
	"github.com/bloodconnect/donor-match-api/internal/core/domain"
	"github.com/bloodconnect/donor-match-api/internal/core/ports"
)

// DonorHandler handles donor registration, login and dashboard requests.
type DonorHandler struct {
	service ports.DonorService
}

func NewDonorHandler(service ports.DonorService) *DonorHandler {
	return &DonorHandler{service: service}
}

// Register creates a donor account.
//
// @Summary      Register a donor
// @Tags         donors
// @Accept       json
// @Produce      json
// @Param        body  body      registerDonorRequest  true  "Donor details"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/donors/register [post]
func (h *DonorHandler) Register(c echo.Context) error {
	var req registerDonorRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(err)
	}
	if err := c.Validate(&req); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	token, err := h.service.Register(c.Request().Context(), ports.RegisterDonorInput{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		BloodGroup: req.BloodGroup,
		Location:   req.Location,
		Password:   req.Password,
	})
	if err != nil {
		return serverError("Error registering donor", err)
	}

	return c.JSON(http.StatusOK, tokenResponse{Message: "Donor registered successfully", Token: token})
}

// Login authenticates a donor and returns a claim token.
//
// @Summary      Donor login
// @Tags         donors
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  donorLoginResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /login-donor [post]
func (h *DonorHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(err)
	}
	if err := c.Validate(&req); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	res, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return serverError("Server error", err)
	}

	return c.JSON(http.StatusOK, donorLoginResponse{
		Message: "Login successful",
		Token:   res.Token,
		Name:    res.Donor.Name,
	})
}

// Dashboard returns the calling donor's own record.
//
// @Summary      Donor dashboard
// @Tags         donors
// @Produce      json
// @Security     ClaimToken
// @Success      200  {object}  donorDashboardResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /donor-dashboard [get]
func (h *DonorHandler) Dashboard(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok || p.Role() != domain.RoleDonor {
		return middleware.Forbidden()
	}

	donor, err := h.service.Profile(c.Request().Context(), p.SubjectID())
	if err != nil {
		if errors.Is(err, domain.ErrDonorNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Donor not found")
		}
		return serverError("Server error", err)
	}

	return c.JSON(http.StatusOK, donorDashboardResponse{
		Message: "Welcome " + donor.Name,
		Donor:   toDonorResponse(donor),
	})
}
