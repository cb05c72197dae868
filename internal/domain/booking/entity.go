package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyCancelled   = errors.New("booking is already cancelled")
	ErrCancelWindowClosed = errors.New("booking can no longer be cancelled this close to the event")
)

// Booking is one person's claim on one seat of one event.
type Booking struct {
	id          uuid.UUID
	orgID       uuid.UUID
	eventID     uuid.UUID
	personID    uuid.UUID
	status      Status
	createdAt   time.Time
	cancelledAt *time.Time
}

func NewBooking(orgID, eventID, personID uuid.UUID) *Booking {
	return &Booking{
		id:       uuid.New(),
		orgID:    orgID,
		eventID:  eventID,
		personID: personID,
		status:   StatusConfirmed,
	}
}

func ReconstructBooking(
	id, orgID, eventID, personID uuid.UUID,
	status Status,
	createdAt time.Time,
	cancelledAt *time.Time,
) *Booking {
	return &Booking{
		id:          id,
		orgID:       orgID,
		eventID:     eventID,
		personID:    personID,
		status:      status,
		createdAt:   createdAt,
		cancelledAt: cancelledAt,
	}
}

// Cancel transitions confirmed -> cancelled. deadline is how long before the
// event start cancellation stays open; capacity admission is never consulted
// here because freeing a seat cannot violate capacity.
func (b *Booking) Cancel(now, eventStart time.Time, deadline time.Duration) error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	if now.After(eventStart.Add(-deadline)) {
		return ErrCancelWindowClosed
	}

	b.status = StatusCancelled
	cancelled := now
	b.cancelledAt = &cancelled
	return nil
}

func (b *Booking) IsConfirmed() bool {
	return b.status == StatusConfirmed
}

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) OrgID() uuid.UUID        { return b.orgID }
func (b *Booking) EventID() uuid.UUID      { return b.eventID }
func (b *Booking) PersonID() uuid.UUID     { return b.personID }
func (b *Booking) Status() Status          { return b.status }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
func (b *Booking) CancelledAt() *time.Time { return b.cancelledAt }
