package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"rentride/internal/domain/booking"
	"rentride/internal/domain/pricing"
	reqdto "rentride/internal/handler/dto/request"
	"rentride/internal/infra"
	"rentride/internal/pkg/clock"
	"rentride/internal/pkg/errs"
	"rentride/internal/usecase/queries"
	"rentride/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const idempotencyTTL = 24 * time.Hour

type CreateBookingResult struct {
	Booking    *queries.BookingView
	IsReplayed bool
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest, userID uuid.UUID, idempotencyKey uuid.UUID) (*CreateBookingResult, error)
}

type bookingUseCaseImpl struct {
	bookingRepo     BookingRepository
	vehicleRepo     VehicleRepository
	slotRepo        SlotRepository
	idempotencyRepo IdempotencyRepository
	bookingQueries  queries.BookingQueries
	fees            pricing.FeePolicy
	db              *pgxpool.Pool
	clock           clock.Clock
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	vehicleRepo VehicleRepository,
	slotRepo SlotRepository,
	idempotencyRepo IdempotencyRepository,
	bookingQueries queries.BookingQueries,
	fees pricing.FeePolicy,
	db *pgxpool.Pool,
	clock clock.Clock,
) BookingCommands {
	return &bookingUseCaseImpl{
		bookingRepo:     bookingRepo,
		vehicleRepo:     vehicleRepo,
		slotRepo:        slotRepo,
		idempotencyRepo: idempotencyRepo,
		bookingQueries:  bookingQueries,
		fees:            fees,
		db:              db,
		clock:           clock,
	}
}

func (r *bookingUseCaseImpl) CreateBooking(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	userID uuid.UUID,
	idempotencyKey uuid.UUID,
) (*CreateBookingResult, error) {
	requestHash := r.calculateRequestHash(req)
	expiresAt := r.clock.Now().Add(idempotencyTTL)

	existingResult, err := r.handleIdempotency(ctx, idempotencyKey, userID, requestHash, expiresAt)
	if err != nil {
		return nil, err
	}
	if existingResult != nil {
		return &CreateBookingResult{
			Booking:    existingResult,
			IsReplayed: true,
		}, nil
	}

	bookingView, err := r.createNewBooking(ctx, req, userID, idempotencyKey)
	if err != nil {
		return nil, err
	}
	return &CreateBookingResult{
		Booking:    bookingView,
		IsReplayed: false,
	}, nil
}

func (r *bookingUseCaseImpl) handleIdempotency(
	ctx context.Context,
	idempotencyKey, userID uuid.UUID,
	requestHash string,
	expiresAt time.Time,
) (*queries.BookingView, error) {
	if err := r.idempotencyRepo.TryInsert(ctx, idempotencyKey, userID, "POST /bookings", requestHash, expiresAt); err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}

	existing, err := r.idempotencyRepo.Get(ctx, idempotencyKey, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}

	switch existing.Status {
	case "completed":
		if existing.ResultBookingID != nil {
			// Use system-level access for idempotency replay
			return r.bookingQueries.GetByIDSystem(ctx, *existing.ResultBookingID)
		}
		return nil, errs.New("completed request missing result booking ID")

	case "processing":
		if existing.RequestHash != requestHash {
			return nil, errs.ErrDuplicateBooking
		}
		return nil, errs.ErrIdempotencyInProgress

	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (r *bookingUseCaseImpl) createNewBooking(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	userID, idempotencyKey uuid.UUID,
) (*queries.BookingView, error) {
	window, err := booking.NewWindow(req.StartTime, req.EndTime)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidWindow)
	}

	if _, err := r.vehicleRepo.FindByID(ctx, req.VehicleID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrVehicleNotFound
		}
		return nil, errs.Mark(err, errs.ErrVehicleNotFound)
	}

	result, err := r.evaluateAgainstFreshSlots(ctx, req, window)
	if err != nil {
		return nil, err
	}

	bookingEntity, err := booking.NewBooking(req.VehicleID, userID, result.Governing.ID(), window, booking.PriceSpec{
		BaseAmount:      result.Price.BaseAmount.Amount(),
		SecurityDeposit: result.Price.SecurityDeposit.Amount(),
		PlatformFee:     result.Price.PlatformFee.Amount(),
		Total:           result.Price.Total.Amount(),
		Hours:           result.Price.Hours,
		Description:     result.Price.Description,
		UsedDailyRate:   result.Price.UsedDailyRate,
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to build booking")
	}

	return r.executeBookingTransaction(ctx, bookingEntity, idempotencyKey, userID)
}

// evaluateAgainstFreshSlots re-runs the full coverage/duration/price gate
// against a just-fetched slot list. A window that was quotable moments ago may
// no longer be; any such failure, and any price drift from the quoted total,
// is reported as stale availability rather than the underlying cause.
func (r *bookingUseCaseImpl) evaluateAgainstFreshSlots(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	window booking.Window,
) (*shared.QuoteResult, error) {
	slots, err := r.slotRepo.ActiveSlots(ctx, req.VehicleID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	result, err := shared.EvaluateQuote(window, slots, r.fees, req.SameDay)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStaleAvailability)
	}

	if result.Price.Total.Amount() != req.QuotedTotal {
		return nil, errs.Mark(
			errs.New("re-priced total differs from quoted total"),
			errs.ErrStaleAvailability,
		)
	}

	return result, nil
}

func (r *bookingUseCaseImpl) executeBookingTransaction(
	ctx context.Context,
	bookingEntity *booking.Booking,
	idempotencyKey, userID uuid.UUID,
) (*queries.BookingView, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	bookingID, err := r.bookingRepo.Create(ctx, tx, bookingEntity)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.ErrBookingConflict
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// Placeholder for response hash until we read the full data
	tempHash := r.calculateIDHash(bookingID)
	err = r.idempotencyRepo.UpdateStatusCompleted(ctx, tx, idempotencyKey, userID, tempHash, bookingID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return nil, errs.Mark(commitErr, errs.ErrDatabaseOperationFailed)
	}

	// Read-after-write: return the complete booking view
	bookingView, err := r.bookingQueries.GetByIDSystem(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return bookingView, nil
}

func (r *bookingUseCaseImpl) calculateRequestHash(req reqdto.CreateBookingRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func (r *bookingUseCaseImpl) calculateIDHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
