package api

import (
	"errors"
	"net/http"
	"time"

	"rentride/internal/domain/booking"
	reqdto "rentride/internal/handler/dto/request"
	resdto "rentride/internal/handler/dto/response"
	"rentride/internal/handler/httperr"
	"rentride/internal/pkg/errs"
	"rentride/internal/usecase/queries"
	"rentride/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type QuoteHandler struct {
	q queries.QuoteQueries
}

func NewQuoteHandler(q queries.QuoteQueries) *QuoteHandler {
	return &QuoteHandler{q: q}
}

// @Summary Quote a rental window
// @Description Validate coverage and duration limits for a window and price it
// @Tags vehicles
// @Accept json
// @Produce json
// @Param id path string true "Vehicle ID"
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /vehicles/{id}/quotes [post]
func (h *QuoteHandler) Create(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid vehicle ID format", nil)
		return
	}

	var req reqdto.QuoteRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	view, err := h.q.Evaluate(c.Request.Context(), vehicleID, req.StartTime, req.EndTime, req.SameDay)
	if err != nil {
		abortWithEvaluationError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

// abortWithEvaluationError maps quote-evaluation failures to HTTP responses.
// Coverage and duration rejections are 422 (the request was understood but
// cannot be booked); they carry machine-readable detail so the client can
// re-prompt with the exact reason.
func abortWithEvaluationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidWindow):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Booking window end must be after start", nil)

	case errors.Is(err, errs.ErrVehicleNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Vehicle not found", nil)

	case errors.Is(err, errs.ErrNoAvailability):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err,
			"No availability for the selected period", gapDetail(err))

	case errors.Is(err, errs.ErrCoverageGap):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err,
			"Selected time period has gaps in availability. Please choose a continuous available period.", gapDetail(err))

	case errors.Is(err, errs.ErrDurationViolation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err,
			"Rental duration is outside the allowed limits", durationDetail(err))

	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func gapDetail(err error) any {
	var gapErr *shared.GapError
	if errors.As(err, &gapErr) {
		return gin.H{"gap_at": gapErr.At.UTC().Format(time.RFC3339)}
	}
	return nil
}

func durationDetail(err error) any {
	var durErr *booking.DurationError
	if errors.As(err, &durErr) {
		return gin.H{
			"bound":       string(durErr.Bound),
			"limit_hours": durErr.LimitHours,
			"hours":       durErr.Hours,
		}
	}
	return nil
}
