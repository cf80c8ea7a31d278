//go:build e2e

package booking_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"rentride/internal/handler/dto/response"
	"rentride/tests/common/authtest"
	"rentride/tests/common/builder"
	"rentride/tests/common/dbtest"
	"rentride/tests/common/httptest"
	"rentride/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	hourOptionsURL = "/api/vehicles/%s/hour-options?date=%s"
	quotesURL      = "/api/vehicles/%s/quotes"
	bookingsURL    = "/api/bookings"
)

type BookingSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *BookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// seedVehicleWithDaySlot creates a vehicle covered by one full-day slot on
// 2026-03-10 UTC at ₹25/h with a ₹200 daily rate, min 2h, max 24h.
func (s *BookingSuite) seedVehicleWithDaySlot(t *testing.T) (uuid.UUID, uuid.UUID) {
	vehicleID := dbtest.CreateTestVehicle(t, s.DB, "Swift Dzire", "Pune")
	slotID := dbtest.CreateTestSlot(t, s.DB, vehicleID, builder.NewSlotBuilder().WithHours(0, 24))
	return vehicleID, slotID
}

func (s *BookingSuite) quote(t *testing.T, vehicleID uuid.UUID, start, end time.Time, sameDay bool) response.QuoteResponse {
	reqBody := map[string]any{
		"start_time": start.Format(time.RFC3339),
		"end_time":   end.Format(time.RFC3339),
		"same_day":   sameDay,
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(quotesURL, vehicleID), reqBody, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var quote response.QuoteResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &quote))
	return quote
}

func bookingRequestBody(vehicleID uuid.UUID, start, end time.Time, sameDay bool, quotedTotal int64) map[string]any {
	return map[string]any{
		"vehicle_id":   vehicleID,
		"start_time":   start.Format(time.RFC3339),
		"end_time":     end.Format(time.RFC3339),
		"same_day":     sameDay,
		"quoted_total": quotedTotal,
	}
}

func idempotencyHeader(key uuid.UUID) map[string]string {
	return map[string]string{"Idempotency-Key": key.String()}
}

// =============================================================================
// TestQuoteFlow - hour options and quoting against real slot data
// =============================================================================

func (s *BookingSuite) TestQuoteFlow() {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	s.Run("Normal case: hour options list every covered hour", func() {
		t := s.T()
		vehicleID, slotID := s.seedVehicleWithDaySlot(t)

		url := fmt.Sprintf(hourOptionsURL, vehicleID, "2026-03-10")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.HourOptionsResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, "2026-03-10", res.Date)
		require.Len(t, res.Options, 24)
		require.Equal(t, 0, res.Options[0].Hour)
		require.Equal(t, 23, res.Options[23].Hour)
		require.Equal(t, slotID, res.Options[0].SlotID)
	})

	s.Run("Normal case: quote prices a covered window", func() {
		t := s.T()
		vehicleID, slotID := s.seedVehicleWithDaySlot(t)

		quote := s.quote(t, vehicleID, day.Add(8*time.Hour), day.Add(18*time.Hour), true)

		// 10h × ₹25 = ₹250 beats the ₹200 daily cap
		require.Equal(t, int64(20000), quote.BaseAmount)
		require.Equal(t, int64(5000), quote.SecurityDeposit)
		require.Equal(t, int64(2000), quote.PlatformFee)
		require.Equal(t, int64(27000), quote.Total)
		require.True(t, quote.UsedDailyRate)
		require.Equal(t, slotID, quote.GoverningSlotID)
		require.Equal(t, []uuid.UUID{slotID}, quote.ContributingSlotIDs)
	})

	s.Run("Normal case: adjacent slots from different owners cover one window", func() {
		t := s.T()
		vehicleID := dbtest.CreateTestVehicle(t, s.DB, "Swift Dzire", "Pune")
		first := dbtest.CreateTestSlot(t, s.DB, vehicleID, builder.NewSlotBuilder().WithHours(0, 6))
		second := dbtest.CreateTestSlot(t, s.DB, vehicleID, builder.NewSlotBuilder().WithHours(6, 12))

		quote := s.quote(t, vehicleID, day.Add(2*time.Hour), day.Add(10*time.Hour), true)

		require.Equal(t, first, quote.GoverningSlotID)
		require.Equal(t, []uuid.UUID{first, second}, quote.ContributingSlotIDs)
	})

	s.Run("Error case: gap between slots is rejected with its position", func() {
		t := s.T()
		vehicleID := dbtest.CreateTestVehicle(t, s.DB, "Swift Dzire", "Pune")
		dbtest.CreateTestSlot(t, s.DB, vehicleID, builder.NewSlotBuilder().WithHours(0, 5))
		dbtest.CreateTestSlot(t, s.DB, vehicleID, builder.NewSlotBuilder().WithHours(6, 10))

		reqBody := map[string]any{
			"start_time": day.Add(2 * time.Hour).Format(time.RFC3339),
			"end_time":   day.Add(8 * time.Hour).Format(time.RFC3339),
			"same_day":   true,
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(quotesURL, vehicleID), reqBody, "")
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

		var body struct {
			Detail struct {
				GapAt string `json:"gap_at"`
			} `json:"detail"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
		require.Equal(t, "2026-03-10T05:00:00Z", body.Detail.GapAt)
	})

	s.Run("Error case: same-day booking above the governing slot's maximum", func() {
		t := s.T()
		vehicleID := dbtest.CreateTestVehicle(t, s.DB, "Swift Dzire", "Pune")
		dbtest.CreateTestSlot(t, s.DB, vehicleID,
			builder.NewSlotBuilder().WithHours(0, 48).WithRentalHours(2, 8))

		reqBody := map[string]any{
			"start_time": day.Format(time.RFC3339),
			"end_time":   day.Add(10 * time.Hour).Format(time.RFC3339),
			"same_day":   true,
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(quotesURL, vehicleID), reqBody, "")
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

		var body struct {
			Detail struct {
				Bound      string `json:"bound"`
				LimitHours int    `json:"limit_hours"`
			} `json:"detail"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
		require.Equal(t, "same_day_maximum", body.Detail.Bound)
		require.Equal(t, 8, body.Detail.LimitHours)
	})

	s.Run("Error case: unknown vehicle returns 404", func() {
		t := s.T()
		reqBody := map[string]any{
			"start_time": day.Add(8 * time.Hour).Format(time.RFC3339),
			"end_time":   day.Add(10 * time.Hour).Format(time.RFC3339),
			"same_day":   true,
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(quotesURL, uuid.New()), reqBody, "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// =============================================================================
// TestCreateBooking - full quote-then-book flow
// =============================================================================

func (s *BookingSuite) TestCreateBooking() {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	start := day.Add(8 * time.Hour)
	end := day.Add(18 * time.Hour)

	s.Run("Normal case: quoted window books successfully", func() {
		t := s.T()
		vehicleID, slotID := s.seedVehicleWithDaySlot(t)
		userID := uuid.New()
		token := s.jwt.GenerateToken(t, userID)

		quote := s.quote(t, vehicleID, start, end, true)
		reqBody := bookingRequestBody(vehicleID, start, end, true, quote.Total)

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			reqBody, idempotencyHeader(uuid.New()), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		expected := &response.BookingResponse{
			VehicleID:       vehicleID,
			UserID:          userID,
			SlotID:          slotID,
			StartDatetime:   start,
			EndDatetime:     end,
			BaseAmount:      20000,
			SecurityDeposit: 5000,
			PlatformFee:     2000,
			Total:           27000,
			Hours:           10,
			UsedDailyRate:   true,
			Status:          "confirmed",
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.BookingResponse{}, "ID", "Breakdown", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, &created, opts...); diff != "" {
			t.Errorf("Booking response mismatch (-want +got):\n%s", diff)
		}

		// The booking is visible through the read side
		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.ID.String(), nil, token)
		require.Equal(t, http.StatusOK, dw.Code)

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, token)
		require.Equal(t, http.StatusOK, lw.Code)
		var list []response.BookingListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &list))
		require.Len(t, list, 1)
		require.Equal(t, created.ID, list[0].ID)
	})

	s.Run("Normal case: same key and body replays the first booking", func() {
		t := s.T()
		vehicleID, _ := s.seedVehicleWithDaySlot(t)
		token := s.jwt.GenerateToken(t, uuid.New())

		quote := s.quote(t, vehicleID, start, end, true)
		reqBody := bookingRequestBody(vehicleID, start, end, true, quote.Total)
		key := uuid.New()

		w1 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			reqBody, idempotencyHeader(key), token)
		require.Equal(t, http.StatusCreated, w1.Code, w1.Body.String())
		var first response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w1.Body, &first))

		w2 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			reqBody, idempotencyHeader(key), token)
		require.Equal(t, http.StatusOK, w2.Code, w2.Body.String())
		var replayed response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w2.Body, &replayed))

		require.Equal(t, first.ID, replayed.ID)
		require.Equal(t, 1, dbtest.CountBookings(t, s.DB, vehicleID))
	})

	s.Run("Normal case: completed key replays without re-executing", func() {
		t := s.T()
		vehicleID, _ := s.seedVehicleWithDaySlot(t)
		token := s.jwt.GenerateToken(t, uuid.New())

		quote := s.quote(t, vehicleID, start, end, true)
		key := uuid.New()

		w1 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			bookingRequestBody(vehicleID, start, end, true, quote.Total), idempotencyHeader(key), token)
		require.Equal(t, http.StatusCreated, w1.Code, w1.Body.String())

		// Once a key is completed it always returns the stored result; the
		// parameter-mismatch rejection only applies while a request is still
		// in flight.
		otherQuote := s.quote(t, vehicleID, day.Add(19*time.Hour), day.Add(22*time.Hour), true)
		w2 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			bookingRequestBody(vehicleID, day.Add(19*time.Hour), day.Add(22*time.Hour), true, otherQuote.Total),
			idempotencyHeader(key), token)
		require.Equal(t, http.StatusOK, w2.Code, w2.Body.String())
		require.Equal(t, 1, dbtest.CountBookings(t, s.DB, vehicleID))
	})

	s.Run("Error case: overlapping confirmed booking conflicts", func() {
		t := s.T()
		vehicleID, _ := s.seedVehicleWithDaySlot(t)
		firstToken := s.jwt.GenerateToken(t, uuid.New())
		secondToken := s.jwt.GenerateToken(t, uuid.New())

		quote := s.quote(t, vehicleID, start, end, true)

		w1 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			bookingRequestBody(vehicleID, start, end, true, quote.Total), idempotencyHeader(uuid.New()), firstToken)
		require.Equal(t, http.StatusCreated, w1.Code, w1.Body.String())

		// Overlapping window for another customer
		overlapQuote := s.quote(t, vehicleID, day.Add(10*time.Hour), day.Add(14*time.Hour), true)
		w2 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			bookingRequestBody(vehicleID, day.Add(10*time.Hour), day.Add(14*time.Hour), true, overlapQuote.Total),
			idempotencyHeader(uuid.New()), secondToken)
		require.Equal(t, http.StatusConflict, w2.Code, w2.Body.String())
		require.Equal(t, 1, dbtest.CountBookings(t, s.DB, vehicleID))
	})

	s.Run("Error case: slot deactivated after quoting makes the quote stale", func() {
		t := s.T()
		vehicleID, slotID := s.seedVehicleWithDaySlot(t)
		token := s.jwt.GenerateToken(t, uuid.New())

		quote := s.quote(t, vehicleID, start, end, true)

		_, err := s.DB.Exec(context.Background(),
			"UPDATE availability_slots SET is_active = false WHERE id = $1", slotID)
		require.NoError(t, err)

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			bookingRequestBody(vehicleID, start, end, true, quote.Total), idempotencyHeader(uuid.New()), token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
		require.Equal(t, 0, dbtest.CountBookings(t, s.DB, vehicleID))
	})

	s.Run("Error case: quoted total no longer matches the fresh price", func() {
		t := s.T()
		vehicleID, _ := s.seedVehicleWithDaySlot(t)
		token := s.jwt.GenerateToken(t, uuid.New())

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			bookingRequestBody(vehicleID, start, end, true, 12345), idempotencyHeader(uuid.New()), token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("Auth test: missing and expired tokens are rejected", func() {
		t := s.T()
		vehicleID, _ := s.seedVehicleWithDaySlot(t)
		reqBody := bookingRequestBody(vehicleID, start, end, true, 27000)

		w1 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			reqBody, idempotencyHeader(uuid.New()), "")
		require.Equal(t, http.StatusUnauthorized, w1.Code)

		expired := s.jwt.CreateExpiredToken(t, uuid.New())
		w2 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			reqBody, idempotencyHeader(uuid.New()), expired)
		require.Equal(t, http.StatusUnauthorized, w2.Code)
	})
}

// =============================================================================
// TestGetBooking - ownership on the read side
// =============================================================================

func (s *BookingSuite) TestGetBooking() {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	start := day.Add(8 * time.Hour)
	end := day.Add(18 * time.Hour)

	s.Run("Error case: another customer's booking reads as not found", func() {
		t := s.T()
		vehicleID, _ := s.seedVehicleWithDaySlot(t)
		ownerToken := s.jwt.GenerateToken(t, uuid.New())
		strangerToken := s.jwt.GenerateToken(t, uuid.New())

		quote := s.quote(t, vehicleID, start, end, true)
		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL,
			bookingRequestBody(vehicleID, start, end, true, quote.Total), idempotencyHeader(uuid.New()), ownerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.ID.String(), nil, strangerToken)
		require.Equal(t, http.StatusNotFound, gw.Code)

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, strangerToken)
		require.Equal(t, http.StatusOK, lw.Code)
		var list []response.BookingListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &list))
		require.Empty(t, list)
	})
}
