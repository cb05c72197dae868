//go:build unit

package builder

import (
	"time"

	"studiobook/internal/domain/booking"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID          uuid.UUID
	OrgID       uuid.UUID
	EventID     uuid.UUID
	PersonID    uuid.UUID
	Status      booking.Status
	CreatedAt   time.Time
	CancelledAt *time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:        uuid.New(),
		OrgID:     uuid.New(),
		EventID:   uuid.New(),
		PersonID:  uuid.New(),
		Status:    booking.StatusConfirmed,
		CreatedAt: baseDay,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithEvent(id uuid.UUID) *BookingBuilder {
	b.EventID = id
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) AsCancelled() *BookingBuilder {
	b.Status = booking.StatusCancelled
	cancelled := b.CreatedAt.Add(time.Minute)
	b.CancelledAt = &cancelled
	return b
}

func (b *BookingBuilder) BuildPersisted() *booking.Booking {
	return booking.ReconstructBooking(
		b.ID, b.OrgID, b.EventID, b.PersonID,
		b.Status, b.CreatedAt, b.CancelledAt,
	)
}
