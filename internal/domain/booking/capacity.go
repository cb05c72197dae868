package booking

import (
	"fmt"

	"studiobook/internal/domain/schedule"

	"github.com/google/uuid"
)

// Candidate is a proposed admission into an event's confirmed seats.
// ExcludeID carries the booking's own id during in-place updates; callers
// must leave that booking out of the confirmed count they supply.
type Candidate struct {
	EventID   uuid.UUID
	Status    Status
	ExcludeID *uuid.UUID
}

// EventSnapshot is the slice of event state capacity admission reads.
// ResourceCapacity backs the zero-capacity fallback.
type EventSnapshot struct {
	ID               uuid.UUID
	Kind             schedule.EventKind
	Capacity         int32
	ResourceCapacity int32
}

// CapacityError reports an admission that would exceed the effective capacity.
type CapacityError struct {
	EventID   uuid.UUID
	Confirmed int64
	Capacity  int64
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("event %s is full (%d/%d confirmed)", e.EventID, e.Confirmed, e.Capacity)
}

// EffectiveCapacity is the seat ceiling actually used for admission:
// individual events admit exactly one participant regardless of stored
// capacity, and a stored capacity of 0 falls back to the resource's capacity.
func EffectiveCapacity(ev EventSnapshot) int64 {
	if ev.Kind == schedule.KindIndividual {
		return 1
	}
	if ev.Capacity > 0 {
		return int64(ev.Capacity)
	}
	return int64(ev.ResourceCapacity)
}

// CheckCapacity decides whether the candidate may hold a confirmed seat.
// confirmedCount is the number of persisted confirmed bookings for the event,
// excluding the candidate itself. Non-confirmed candidates pass trivially:
// a cancelled booking never counts against capacity. Pure read-then-decide,
// mirroring CheckNoConflict's contract.
func CheckCapacity(c Candidate, ev EventSnapshot, confirmedCount int64) error {
	if c.Status != StatusConfirmed {
		return nil
	}

	capacity := EffectiveCapacity(ev)
	if confirmedCount >= capacity {
		return &CapacityError{
			EventID:   ev.ID,
			Confirmed: confirmedCount,
			Capacity:  capacity,
		}
	}

	return nil
}
