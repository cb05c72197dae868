package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type EventView struct {
	ID             uuid.UUID `json:"id"`
	ResourceID     uuid.UUID `json:"resource_id"`
	ResourceName   string    `json:"resource_name"`
	Title          string    `json:"title"`
	StartsAt       time.Time `json:"starts_at"`
	EndsAt         time.Time `json:"ends_at"`
	Kind           string    `json:"kind"`
	Capacity       int64     `json:"capacity"`
	ConfirmedCount int64     `json:"confirmed_count"`
	Remaining      int64     `json:"remaining"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type EventListItem struct {
	ID             uuid.UUID `json:"id"`
	ResourceID     uuid.UUID `json:"resource_id"`
	Title          string    `json:"title"`
	StartsAt       time.Time `json:"starts_at"`
	EndsAt         time.Time `json:"ends_at"`
	Kind           string    `json:"kind"`
	Capacity       int64     `json:"capacity"`
	ConfirmedCount int64     `json:"confirmed_count"`
	Remaining      int64     `json:"remaining"`
}

type BookingView struct {
	ID            uuid.UUID  `json:"id"`
	EventID       uuid.UUID  `json:"event_id"`
	EventTitle    string     `json:"event_title"`
	EventStartsAt time.Time  `json:"event_starts_at"`
	PersonID      uuid.UUID  `json:"person_id"`
	PersonName    string     `json:"person_name"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	CancelledAt   *time.Time `json:"cancelled_at,omitempty"`
}

type ResourceView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Capacity  int32     `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
