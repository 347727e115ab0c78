package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloodconnect/donor-match-api/internal/core/domain"
	"github.com/bloodconnect/donor-match-api/internal/core/ports"
)

// MatchHandler serves the unauthenticated blood search.
type MatchHandler struct {
	service ports.MatchService
}

func NewMatchHandler(service ports.MatchService) *MatchHandler {
	return &MatchHandler{service: service}
}

// FindBlood handles POST /find-blood.
//
// @Summary      Find donors and hospitals for a blood group
// @Description  Donors must match blood group and location exactly. Hospitals must be in the city and list the blood type, whatever the unit count.
// @Tags         match
// @Accept       json
// @Produce      json
// @Param        body  body      findBloodRequest  true  "Blood group and location"
// @Success      200   {object}  findBloodResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /find-blood [post]
func (h *MatchHandler) FindBlood(c echo.Context) error {
	var req findBloodRequest
	if err := c.Bind(&req); err != nil {
		return invalidPayload(err)
	}

	result, err := h.service.FindBlood(c.Request().Context(), domain.MatchKey{
		BloodGroup: req.BloodGroup,
		Location:   req.Location,
	})
	if err != nil {
		return serverError("Server error", err)
	}

	return c.JSON(http.StatusOK, toFindBloodResponse(result))
}
