package queries

import (
	"context"

	"rentride/internal/infra"
	"rentride/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetByID(ctx context.Context, bookingID uuid.UUID, userID uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error)
	// GetByIDSystem bypasses the ownership check; used for idempotent replay.
	GetByIDSystem(ctx context.Context, bookingID uuid.UUID) (*BookingView, error)
}

type bookingQueriesImpl struct {
	bookingRepo BookingViewRepo
}

func NewBookingQueries(bookingRepo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{bookingRepo: bookingRepo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, bookingID uuid.UUID, userID uuid.UUID) (*BookingView, error) {
	view, err := q.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}

	// Customers only see their own bookings; leak nothing about others'.
	if view.UserID != userID {
		return nil, errs.ErrBookingNotFound
	}

	return view, nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error) {
	items, err := q.bookingRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list bookings")
	}
	return items, nil
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, bookingID uuid.UUID) (*BookingView, error) {
	view, err := q.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}
	return view, nil
}
