package schedule

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle       = errors.New("event title cannot be empty")
	ErrTitleTooLong     = errors.New("event title is too long (max 140 characters)")
	ErrNegativeCapacity = errors.New("event capacity cannot be negative")
	ErrInvalidKind      = errors.New("invalid event kind")
)

const MaxTitleLength = 140

// Event is a scheduled occupation of one resource within one organization.
// A stored capacity of 0 means "inherit the resource's capacity" at admission
// time; it never means zero seats.
type Event struct {
	id         uuid.UUID
	orgID      uuid.UUID
	resourceID uuid.UUID
	title      string
	slot       TimeSlot
	capacity   int32
	kind       EventKind
	createdAt  time.Time
	updatedAt  time.Time
}

func NewEvent(orgID, resourceID uuid.UUID, title string, slot TimeSlot, capacity int32, kind EventKind) (*Event, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if slot.IsZero() {
		return nil, ErrInvalidTimeSlot
	}
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}

	return &Event{
		id:         uuid.New(),
		orgID:      orgID,
		resourceID: resourceID,
		title:      strings.TrimSpace(title),
		slot:       slot,
		capacity:   capacity,
		kind:       kind,
	}, nil
}

func ReconstructEvent(
	id, orgID, resourceID uuid.UUID,
	title string,
	slot TimeSlot,
	capacity int32,
	kind EventKind,
	createdAt, updatedAt time.Time,
) *Event {
	return &Event{
		id:         id,
		orgID:      orgID,
		resourceID: resourceID,
		title:      title,
		slot:       slot,
		capacity:   capacity,
		kind:       kind,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

// Reschedule moves the event to a new resource and window. Conflict checking
// is a separate explicit step; callers re-run it whenever this is used.
func (e *Event) Reschedule(resourceID uuid.UUID, slot TimeSlot) error {
	if slot.IsZero() {
		return ErrInvalidTimeSlot
	}
	e.resourceID = resourceID
	e.slot = slot
	return nil
}

func (e *Event) Retitle(title string) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	e.title = strings.TrimSpace(title)
	return nil
}

func (e *Event) SetCapacity(capacity int32) error {
	if capacity < 0 {
		return ErrNegativeCapacity
	}
	e.capacity = capacity
	return nil
}

func (e *Event) ID() uuid.UUID         { return e.id }
func (e *Event) OrgID() uuid.UUID      { return e.orgID }
func (e *Event) ResourceID() uuid.UUID { return e.resourceID }
func (e *Event) Title() string         { return e.title }
func (e *Event) Slot() TimeSlot        { return e.slot }
func (e *Event) Capacity() int32       { return e.capacity }
func (e *Event) Kind() EventKind       { return e.kind }
func (e *Event) CreatedAt() time.Time  { return e.createdAt }
func (e *Event) UpdatedAt() time.Time  { return e.updatedAt }
