package api

import (
	"errors"
	"net/http"

	"rentride/internal/domain/booking"
	resdto "rentride/internal/handler/dto/response"
	"rentride/internal/handler/httperr"
	"rentride/internal/pkg/errs"
	"rentride/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary List hour options
// @Description List selectable start/end hours for a vehicle on a given date
// @Tags vehicles
// @Produce json
// @Param id path string true "Vehicle ID"
// @Param date query string true "Date (YYYY-MM-DD, UTC)"
// @Success 200 {object} resdto.HourOptionsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /vehicles/{id}/hour-options [get]
func (h *AvailabilityHandler) HourOptions(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid vehicle ID format", nil)
		return
	}

	date, err := booking.ParseDate(c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format, expected YYYY-MM-DD", nil)
		return
	}

	views, err := h.q.HourOptions(c.Request.Context(), vehicleID, date)
	if err != nil {
		if errors.Is(err, errs.ErrVehicleNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Vehicle not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromHourOptionViews(date.String(), views))
}
