package commands

import (
	"context"
	"time"

	"studiobook/internal/domain/schedule"
	"studiobook/internal/infra"
	"studiobook/internal/pkg/errs"
	"studiobook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrResourceNotFound        = errs.New("resource not found")
	ErrEventNotFound           = errs.New("event not found")
	ErrScheduleConflict        = errs.New("schedule conflict")
	ErrInvalidTimeSlot         = errs.New("invalid time slot")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateEventRequest struct {
	ResourceID uuid.UUID
	Title      string
	StartsAt   time.Time
	EndsAt     time.Time
	Capacity   int32
	Kind       string
}

type UpdateEventRequest struct {
	ResourceID uuid.UUID
	Title      string
	StartsAt   time.Time
	EndsAt     time.Time
	Capacity   int32
}

type CreateEventResult struct {
	EventID uuid.UUID
}

type EventCommands interface {
	CreateEvent(ctx context.Context, req CreateEventRequest, orgID uuid.UUID) (*CreateEventResult, error)
	UpdateEvent(ctx context.Context, eventID uuid.UUID, req UpdateEventRequest, orgID uuid.UUID) error
	DeleteEvent(ctx context.Context, eventID, orgID uuid.UUID) error
}

type eventUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewEventUseCase(uow shared.UnitOfWork) EventCommands {
	return &eventUseCaseImpl{uow: uow}
}

func (uc *eventUseCaseImpl) CreateEvent(ctx context.Context, req CreateEventRequest, orgID uuid.UUID) (*CreateEventResult, error) {
	slot, err := schedule.NewTimeSlot(req.StartsAt, req.EndsAt)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTimeSlot)
	}

	ev, err := schedule.NewEvent(orgID, req.ResourceID, req.Title, slot, req.Capacity, schedule.EventKind(req.Kind))
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// The resource row lock serializes concurrent writes on this resource,
		// so the conflict check below sees a stable event set.
		if _, derr := tx.Resources().LockForSchedule(ctx, orgID, req.ResourceID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrResourceNotFound
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		existing, derr := tx.Events().ListByResource(ctx, orgID, req.ResourceID)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		candidate := schedule.Candidate{
			OrgID:      orgID,
			ResourceID: req.ResourceID,
			Slot:       slot,
		}
		if derr := schedule.CheckNoConflict(candidate, existing); derr != nil {
			return errs.Mark(derr, ErrScheduleConflict)
		}

		id, derr := tx.Events().Create(ctx, ev)
		if derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return errs.Mark(derr, ErrScheduleConflict)
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateEventResult{EventID: createdID}, nil
}

func (uc *eventUseCaseImpl) UpdateEvent(ctx context.Context, eventID uuid.UUID, req UpdateEventRequest, orgID uuid.UUID) error {
	slot, err := schedule.NewTimeSlot(req.StartsAt, req.EndsAt)
	if err != nil {
		return errs.Mark(err, ErrInvalidTimeSlot)
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Resources().LockForSchedule(ctx, orgID, req.ResourceID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrResourceNotFound
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		ev, derr := tx.Events().FindByID(ctx, orgID, eventID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrEventNotFound
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		if derr := ev.Reschedule(req.ResourceID, slot); derr != nil {
			return errs.Mark(derr, ErrDomainValidation)
		}
		if derr := ev.Retitle(req.Title); derr != nil {
			return errs.Mark(derr, ErrDomainValidation)
		}
		if derr := ev.SetCapacity(req.Capacity); derr != nil {
			return errs.Mark(derr, ErrDomainValidation)
		}

		existing, derr := tx.Events().ListByResource(ctx, orgID, req.ResourceID)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		// ExcludeID keeps the event from conflicting with its own stored window.
		excludeID := eventID
		candidate := schedule.Candidate{
			OrgID:      orgID,
			ResourceID: req.ResourceID,
			Slot:       slot,
			ExcludeID:  &excludeID,
		}
		if derr := schedule.CheckNoConflict(candidate, existing); derr != nil {
			return errs.Mark(derr, ErrScheduleConflict)
		}

		if derr := tx.Events().Update(ctx, ev); derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return errs.Mark(derr, ErrScheduleConflict)
			}
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrEventNotFound
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (uc *eventUseCaseImpl) DeleteEvent(ctx context.Context, eventID, orgID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Events().Delete(ctx, orgID, eventID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrEventNotFound
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
