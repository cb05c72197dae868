package request

import (
	"studiobook/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	EventID  uuid.UUID `json:"event_id" binding:"required"`
	PersonID uuid.UUID `json:"person_id" binding:"required"`
}

func (r CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		EventID:  r.EventID,
		PersonID: r.PersonID,
	}
}
