package api

import (
	"errors"
	"net/http"

	reqdto "rentride/internal/handler/dto/request"
	resdto "rentride/internal/handler/dto/response"
	"rentride/internal/handler/httperr"
	"rentride/internal/handler/middleware"
	"rentride/internal/pkg/errs"
	"rentride/internal/usecase/commands"
	"rentride/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Re-validate a quoted window against fresh slots and persist the booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 200 {object} resdto.BookingResponse "Replayed from an earlier identical request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}

	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.CreateBooking(c.Request.Context(), req, userID, idempotencyKey)
	if err != nil {
		h.abortWithCreateError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromBookingView(result.Booking))
}

// @Summary Get booking
// @Description Get one of the caller's bookings by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		if errors.Is(err, errs.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description List the caller's bookings, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}

	items, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	responses := make([]*resdto.BookingListResponse, len(items))
	for i, item := range items {
		responses[i] = resdto.FromBookingListItem(item)
	}

	c.JSON(http.StatusOK, responses)
}

func (h *BookingHandler) abortWithCreateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrStaleAvailability):
		httperr.AbortWithError(c, http.StatusConflict, err,
			"Availability changed since the quote was issued. Please request a fresh quote.", gapDetail(err))

	case errors.Is(err, errs.ErrBookingConflict):
		httperr.AbortWithError(c, http.StatusConflict, err,
			"The vehicle was booked by someone else for an overlapping period", nil)

	case errors.Is(err, errs.ErrDuplicateBooking):
		httperr.AbortWithError(c, http.StatusConflict, err,
			"Duplicate booking request with different parameters", nil)

	case errors.Is(err, errs.ErrIdempotencyInProgress):
		httperr.AbortWithError(c, http.StatusConflict, err,
			"Booking request is currently being processed", nil)

	default:
		abortWithEvaluationError(c, err)
	}
}

func getIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	raw := c.GetHeader("Idempotency-Key")
	if raw == "" {
		return uuid.Nil, errs.ErrIdempotencyKeyRequired
	}

	key, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "Idempotency-Key must be a UUID")
	}

	return key, nil
}
