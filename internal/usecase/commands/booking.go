package commands

import (
	"context"

	"studiobook/internal/domain/booking"
	"studiobook/internal/infra"
	"studiobook/internal/pkg/clock"
	"studiobook/internal/pkg/config"
	"studiobook/internal/pkg/errs"
	"studiobook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound    = errs.New("booking not found")
	ErrPersonNotFound     = errs.New("person not found")
	ErrEventFull          = errs.New("event is full")
	ErrDuplicateBooking   = errs.New("person already booked on this event")
	ErrAlreadyCancelled   = errs.New("booking is already cancelled")
	ErrCancelWindowClosed = errs.New("cancellation window has closed")
)

type CreateBookingRequest struct {
	EventID  uuid.UUID
	PersonID uuid.UUID
}

type CreateBookingResult struct {
	BookingID uuid.UUID
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest, orgID uuid.UUID) (*CreateBookingResult, error)
	CancelBooking(ctx context.Context, bookingID, orgID uuid.UUID) error
}

type bookingUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	cfg   config.BookingConfig
}

func NewBookingUseCase(uow shared.UnitOfWork, clk clock.Clock, cfg config.BookingConfig) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, clock: clk, cfg: cfg}
}

func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, req CreateBookingRequest, orgID uuid.UUID) (*CreateBookingResult, error) {
	b := booking.NewBooking(orgID, req.EventID, req.PersonID)

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// The event row lock serializes concurrent admissions, so the count
		// below cannot miss an in-flight confirmed booking.
		snap, _, derr := tx.Events().LockForAdmission(ctx, orgID, req.EventID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrEventNotFound
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		confirmed, derr := tx.Bookings().CountConfirmed(ctx, orgID, req.EventID, nil)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		candidate := booking.Candidate{
			EventID: req.EventID,
			Status:  b.Status(),
		}
		if derr := booking.CheckCapacity(candidate, snap, confirmed); derr != nil {
			return errs.Mark(derr, ErrEventFull)
		}

		if _, derr := tx.Bookings().Create(ctx, b); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(derr, ErrDuplicateBooking)
			}
			if infra.IsKind(derr, infra.KindForeignKeyViolated) {
				return errs.Mark(derr, ErrPersonNotFound)
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateBookingResult{BookingID: b.ID()}, nil
}

// CancelBooking never consults capacity: freeing a seat cannot violate it.
func (uc *bookingUseCaseImpl) CancelBooking(ctx context.Context, bookingID, orgID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().FindByIDForUpdate(ctx, orgID, bookingID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		ev, derr := tx.Events().FindByID(ctx, orgID, b.EventID())
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrEventNotFound
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		if derr := b.Cancel(uc.clock.Now(), ev.Slot().Start(), uc.cfg.CancelDeadline); derr != nil {
			switch derr {
			case booking.ErrAlreadyCancelled:
				return errs.Mark(derr, ErrAlreadyCancelled)
			case booking.ErrCancelWindowClosed:
				return errs.Mark(derr, ErrCancelWindowClosed)
			default:
				return errs.Mark(derr, ErrDomainValidation)
			}
		}

		if derr := tx.Bookings().SaveStatus(ctx, b); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
