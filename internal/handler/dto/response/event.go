package response

import (
	"time"

	"studiobook/internal/usecase/queries"

	"github.com/google/uuid"
)

type EventResponse struct {
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

func FromEventView(v *queries.EventView) *EventResponse {
	return &EventResponse{
		ID:             v.ID,
		ResourceID:     v.ResourceID,
		ResourceName:   v.ResourceName,
		Title:          v.Title,
		StartsAt:       v.StartsAt,
		EndsAt:         v.EndsAt,
		Kind:           v.Kind,
		Capacity:       v.Capacity,
		ConfirmedCount: v.ConfirmedCount,
		Remaining:      v.Remaining,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

type EventListResponse struct {
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

func FromEventListItem(item *queries.EventListItem) *EventListResponse {
	return &EventListResponse{
		ID:             item.ID,
		ResourceID:     item.ResourceID,
		Title:          item.Title,
		StartsAt:       item.StartsAt,
		EndsAt:         item.EndsAt,
		Kind:           item.Kind,
		Capacity:       item.Capacity,
		ConfirmedCount: item.ConfirmedCount,
		Remaining:      item.Remaining,
	}
}
