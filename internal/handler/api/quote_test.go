//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"rentride/internal/domain/booking"
	"rentride/internal/handler/api"
	resdto "rentride/internal/handler/dto/response"
	"rentride/internal/pkg/errs"
	"rentride/internal/usecase/queries"
	"rentride/internal/usecase/shared"
	"rentride/tests/common/httptest"
	"rentride/tests/common/testutil"
	queriesmock "rentride/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type QuoteHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockQuoteQueries
	handler     *api.QuoteHandler
}

func (s *QuoteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockQuoteQueries(s.mockCtrl)
	s.handler = api.NewQuoteHandler(s.mockQueries)

	s.router.POST("/vehicles/:id/quotes", s.handler.Create)
}

func (s *QuoteHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQuoteHandlerSuite(t *testing.T) {
	suite.Run(t, new(QuoteHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *QuoteHandlerTestSuite) TestCreate() {
	vehicleID := uuid.New()
	url := "/vehicles/" + vehicleID.String() + "/quotes"

	start := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
	reqBody := map[string]any{
		"start_time": start.Format(time.RFC3339),
		"end_time":   end.Format(time.RFC3339),
		"same_day":   true,
	}

	returnView := &queries.QuoteView{
		BaseAmount:          20000,
		SecurityDeposit:     5000,
		PlatformFee:         2000,
		Total:               27000,
		Hours:               10,
		Breakdown:           "Daily rate (better than 10h × ₹25)",
		UsedDailyRate:       true,
		GoverningSlotID:     uuid.New(),
		ContributingSlotIDs: []uuid.UUID{uuid.New()},
	}

	s.Run("success: returns 200 OK with QuoteResponse", func() {
		s.mockQueries.EXPECT().Evaluate(gomock.Any(), vehicleID, start, end, true).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(27000), response.Total)
		s.Equal(returnView.GoverningSlotID, response.GoverningSlotID)
		s.Len(response.ContributingSlotIDs, 1)
	})

	s.Run("error: 400 Bad Request for invalid vehicle UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/vehicles/invalid-uuid/quotes", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid vehicle ID")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: start_time (required)", mutate: testutil.Field("start_time", nil)},
			{name: "missing field: end_time (required)", mutate: testutil.Field("end_time", nil)},
			{name: "malformed end_time", mutate: testutil.Field("end_time", "soon")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps evaluation errors to proper statuses", func() {
		gapAt := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid window",
				queriesError:   errs.Mark(errs.New("end not after start"), errs.ErrInvalidWindow),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "end must be after start",
			},
			{
				name:           "vehicle not found",
				queriesError:   errs.ErrVehicleNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Vehicle not found",
			},
			{
				name:           "no availability",
				queriesError:   errs.Mark(&shared.GapError{At: gapAt}, errs.ErrNoAvailability),
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "No availability",
			},
			{
				name:           "coverage gap",
				queriesError:   errs.Mark(&shared.GapError{At: gapAt}, errs.ErrCoverageGap),
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "gaps in availability",
			},
			{
				name:           "duration violation",
				queriesError:   errs.Mark(&booking.DurationError{Bound: booking.BoundMinimum, LimitHours: 2, Hours: 1}, errs.ErrDurationViolation),
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "duration is outside",
			},
			{
				name:           "internal server error",
				queriesError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().Evaluate(gomock.Any(), vehicleID, start, end, true).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: coverage gap carries the first uncovered instant", func() {
		gapAt := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
		s.mockQueries.EXPECT().Evaluate(gomock.Any(), vehicleID, start, end, true).
			Return(nil, errs.Mark(&shared.GapError{At: gapAt}, errs.ErrCoverageGap)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body struct {
			Detail struct {
				GapAt string `json:"gap_at"`
			} `json:"detail"`
		}
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal("2026-03-10T12:00:00Z", body.Detail.GapAt)
	})

	s.Run("error: duration violation carries the violated bound", func() {
		durErr := &booking.DurationError{Bound: booking.BoundSameDayMax, LimitHours: 24, Hours: 30}
		s.mockQueries.EXPECT().Evaluate(gomock.Any(), vehicleID, start, end, true).
			Return(nil, errs.Mark(durErr, errs.ErrDurationViolation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body struct {
			Detail struct {
				Bound      string  `json:"bound"`
				LimitHours int     `json:"limit_hours"`
				Hours      float64 `json:"hours"`
			} `json:"detail"`
		}
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal(string(booking.BoundSameDayMax), body.Detail.Bound)
		s.Equal(24, body.Detail.LimitHours)
		s.Equal(30.0, body.Detail.Hours)
	})
}
