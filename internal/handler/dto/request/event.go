package request

import (
	"time"

	"studiobook/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateEventRequest struct {
	ResourceID uuid.UUID `json:"resource_id" binding:"required"`
	Title      string    `json:"title" binding:"required"`
	StartsAt   time.Time `json:"starts_at" binding:"required"`
	EndsAt     time.Time `json:"ends_at" binding:"required"`
	Capacity   int32     `json:"capacity" binding:"omitempty,min=0"`
	Kind       string    `json:"kind" binding:"required,oneof=open group individual"`
}

func (r CreateEventRequest) ToCommand() commands.CreateEventRequest {
	return commands.CreateEventRequest{
		ResourceID: r.ResourceID,
		Title:      r.Title,
		StartsAt:   r.StartsAt,
		EndsAt:     r.EndsAt,
		Capacity:   r.Capacity,
		Kind:       r.Kind,
	}
}

type UpdateEventRequest struct {
	ResourceID uuid.UUID `json:"resource_id" binding:"required"`
	Title      string    `json:"title" binding:"required"`
	StartsAt   time.Time `json:"starts_at" binding:"required"`
	EndsAt     time.Time `json:"ends_at" binding:"required"`
	Capacity   int32     `json:"capacity" binding:"omitempty,min=0"`
}

func (r UpdateEventRequest) ToCommand() commands.UpdateEventRequest {
	return commands.UpdateEventRequest{
		ResourceID: r.ResourceID,
		Title:      r.Title,
		StartsAt:   r.StartsAt,
		EndsAt:     r.EndsAt,
		Capacity:   r.Capacity,
	}
}
