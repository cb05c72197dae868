//go:build unit

package builder

import (
	"time"

	"studiobook/internal/domain/schedule"

	"github.com/google/uuid"
)

var baseDay = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

type EventBuilder struct {
	ID         uuid.UUID
	OrgID      uuid.UUID
	ResourceID uuid.UUID
	Title      string
	Start      time.Time
	End        time.Time
	Capacity   int32
	Kind       schedule.EventKind
}

func NewEventBuilder() *EventBuilder {
	return &EventBuilder{
		ID:         uuid.New(),
		OrgID:      uuid.New(),
		ResourceID: uuid.New(),
		Title:      "Morning Yoga",
		Start:      baseDay.Add(10 * time.Hour),
		End:        baseDay.Add(11 * time.Hour),
		Capacity:   10,
		Kind:       schedule.KindGroup,
	}
}

func (b *EventBuilder) With(mutate func(*EventBuilder)) *EventBuilder {
	mutate(b)
	return b
}

func (b *EventBuilder) WithWindow(startHour, endHour float64) *EventBuilder {
	b.Start = baseDay.Add(time.Duration(startHour * float64(time.Hour)))
	b.End = baseDay.Add(time.Duration(endHour * float64(time.Hour)))
	return b
}

func (b *EventBuilder) WithResource(id uuid.UUID) *EventBuilder {
	b.ResourceID = id
	return b
}

func (b *EventBuilder) WithOrg(id uuid.UUID) *EventBuilder {
	b.OrgID = id
	return b
}

func (b *EventBuilder) WithKind(kind schedule.EventKind) *EventBuilder {
	b.Kind = kind
	return b
}

func (b *EventBuilder) WithCapacity(capacity int32) *EventBuilder {
	b.Capacity = capacity
	return b
}

func (b *EventBuilder) BuildDomain() (*schedule.Event, error) {
	slot, err := schedule.NewTimeSlot(b.Start, b.End)
	if err != nil {
		return nil, err
	}
	return schedule.NewEvent(b.OrgID, b.ResourceID, b.Title, slot, b.Capacity, b.Kind)
}

// BuildPersisted reconstructs with the builder's id, as if read from storage.
func (b *EventBuilder) BuildPersisted() *schedule.Event {
	now := baseDay
	return schedule.ReconstructEvent(
		b.ID, b.OrgID, b.ResourceID, b.Title,
		schedule.ReconstructTimeSlot(b.Start, b.End),
		b.Capacity, b.Kind, now, now,
	)
}
