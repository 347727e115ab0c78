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

// HospitalHandler handles hospital registration, login, dashboard and admin requests.
type HospitalHandler struct {
	service ports.HospitalService
}

func NewHospitalHandler(service ports.HospitalService) *HospitalHandler {
	return &HospitalHandler{service: service}
}

// Register creates a hospital account with its initial blood inventory.
//
// @Summary      Register a hospital
// @Tags         hospitals
// @Accept       json
// @Produce      json
// @Param        body  body      registerHospitalRequest  true  "Hospital details; blood is an array of {type, units}"
// @Success      201   {object}  tokenResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /register-hospital [post]
func (h *HospitalHandler) Register(c echo.Context) error {
	var req registerHospitalRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(err)
	}
	if err := c.Validate(&req); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	blood, err := parseInventory(c, req.Blood)
	if err != nil {
		return err
	}

	token, err := h.service.Register(c.Request().Context(), ports.RegisterHospitalInput{
		HospitalName: req.HospitalName,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		City:         req.City,
		Blood:        blood,
		Password:     req.Password,
	})
	if err != nil {
		return serverError("Error registering hospital", err)
	}

	return c.JSON(http.StatusCreated, tokenResponse{Message: "Hospital registered successfully", Token: token})
}

// Login authenticates a hospital. The response includes the inventory snapshot.
//
// @Summary      Hospital login
// @Tags         hospitals
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  hospitalLoginResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /login-hospital [post]
func (h *HospitalHandler) Login(c echo.Context) error {
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

	return c.JSON(http.StatusOK, hospitalLoginResponse{
		Message:      "Login successful",
		Token:        res.Token,
		HospitalName: res.Hospital.HospitalName,
		Blood:        toBloodResponse(res.Hospital.Blood),
	})
}

// Dashboard returns the calling hospital's own record.
//
// @Summary      Hospital dashboard
// @Tags         hospitals
// @Produce      json
// @Security     ClaimToken
// @Success      200  {object}  hospitalDashboardResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /hospital-dashboard [get]
func (h *HospitalHandler) Dashboard(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok || p.Role() != domain.RoleHospital {
		return middleware.Forbidden()
	}

	hospital, err := h.profile(c, p)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, hospitalDashboardResponse{
		Message:  "Welcome " + hospital.HospitalName,
		Hospital: toHospitalResponse(hospital),
	})
}

// AdminData returns the calling admin hospital's record. The admin gate runs first.
//
// @Summary      Hospital admin data
// @Tags         hospitals
// @Produce      json
// @Security     ClaimToken
// @Success      200  {object}  adminDataResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /hospital-admin-data [get]
func (h *HospitalHandler) AdminData(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok || !domain.IsHospitalAdmin(p) {
		return middleware.AdminOnly()
	}

	hospital, err := h.profile(c, p)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, adminDataResponse{Hospital: toHospitalResponse(hospital)})
}

func (h *HospitalHandler) profile(c echo.Context, p domain.Principal) (*domain.Hospital, error) {
	hospital, err := h.service.Profile(c.Request().Context(), p.SubjectID())
	if err != nil {
		if errors.Is(err, domain.ErrHospitalNotFound) {
			return nil, echo.NewHTTPError(http.StatusNotFound, "Hospital not found")
		}
		return nil, serverError("Server error", err)
	}
	return hospital, nil
}
