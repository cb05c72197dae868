package response

import (
	"time"

	"studiobook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ResourceResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Capacity  int32     `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromResourceView(v *queries.ResourceView) *ResourceResponse {
	return &ResourceResponse{
		ID:        v.ID,
		Name:      v.Name,
		Capacity:  v.Capacity,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}
