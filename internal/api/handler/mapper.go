package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloodconnect/donor-match-api/internal/core/domain"
)

// --- Request → domain ---

// parseInventory decodes and validates the raw blood array.
func parseInventory(c echo.Context, raw json.RawMessage) ([]domain.BloodStock, error) {
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, domain.ErrInvalidInput
	}

	var inv inventoryRequest
	if err := json.Unmarshal(raw, &inv.Entries); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidBlood, err)
	}
	if err := c.Validate(&inv); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidBlood, err)
	}

	blood := make([]domain.BloodStock, len(inv.Entries))
	for i, e := range inv.Entries {
		blood[i] = domain.BloodStock{Type: e.Type, Units: *e.Units}
	}
	return blood, nil
}

// --- Domain → response ---

func toBloodResponse(stock []domain.BloodStock) []bloodResponse {
	out := make([]bloodResponse, len(stock))
	for i, b := range stock {
		out[i] = bloodResponse{Type: b.Type, Units: b.Units}
	}
	return out
}

func toDonorResponse(d *domain.Donor) donorResponse {
	return donorResponse{
		ID:         d.ID,
		Name:       d.Name,
		Email:      d.Email,
		Phone:      d.Phone,
		BloodGroup: d.BloodGroup,
		Location:   d.Location,
	}
}

func toHospitalResponse(h *domain.Hospital) hospitalResponse {
	return hospitalResponse{
		ID:           h.ID,
		HospitalName: h.HospitalName,
		Email:        h.Email,
		Phone:        h.Phone,
		Address:      h.Address,
		City:         h.City,
		Blood:        toBloodResponse(h.Blood),
		IsAdmin:      h.IsAdmin,
	}
}

func toFindBloodResponse(r *domain.MatchResult) findBloodResponse {
	donors := make([]donorResponse, len(r.Donors))
	for i := range r.Donors {
		donors[i] = toDonorResponse(&r.Donors[i])
	}
	hospitals := make([]hospitalResponse, len(r.Hospitals))
	for i := range r.Hospitals {
		hospitals[i] = toHospitalResponse(&r.Hospitals[i])
	}
	return findBloodResponse{
		Found:     len(donors) > 0 || len(hospitals) > 0,
		Donors:    donors,
		Hospitals: hospitals,
	}
}

// --- Errors ---

// serverError wraps err so the error handler can map known domain errors and
// report anything else as a 500 carrying msg and the cause.
func serverError(msg string, err error) error {
	return echo.NewHTTPError(http.StatusInternalServerError, msg).SetInternal(err)
}

func invalidPayload(err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body").SetInternal(err)
}
