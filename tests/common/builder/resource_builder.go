//go:build unit

package builder

import (
	"studiobook/internal/domain/resource"

	"github.com/google/uuid"
)

type ResourceBuilder struct {
	ID       uuid.UUID
	OrgID    uuid.UUID
	Name     string
	Capacity int32
}

func NewResourceBuilder() *ResourceBuilder {
	return &ResourceBuilder{
		ID:       uuid.New(),
		OrgID:    uuid.New(),
		Name:     "Studio A",
		Capacity: 20,
	}
}

func (b *ResourceBuilder) WithOrg(id uuid.UUID) *ResourceBuilder {
	b.OrgID = id
	return b
}

func (b *ResourceBuilder) WithCapacity(capacity int32) *ResourceBuilder {
	b.Capacity = capacity
	return b
}

func (b *ResourceBuilder) BuildPersisted() *resource.Resource {
	return resource.ReconstructResource(b.ID, b.OrgID, b.Name, b.Capacity, baseDay, baseDay)
}
