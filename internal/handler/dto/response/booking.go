package response

import (
	"time"

	"studiobook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
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

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:            v.ID,
		EventID:       v.EventID,
		EventTitle:    v.EventTitle,
		EventStartsAt: v.EventStartsAt,
		PersonID:      v.PersonID,
		PersonName:    v.PersonName,
		Status:        v.Status,
		CreatedAt:     v.CreatedAt,
		CancelledAt:   v.CancelledAt,
	}
}
