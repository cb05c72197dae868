package request

import (
	"studiobook/internal/usecase/commands"
)

type CreateResourceRequest struct {
	Name     string `json:"name" binding:"required"`
	Capacity int32  `json:"capacity" binding:"required,min=1"`
}

func (r CreateResourceRequest) ToCommand() commands.CreateResourceRequest {
	return commands.CreateResourceRequest{
		Name:     r.Name,
		Capacity: r.Capacity,
	}
}
