package resource

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyResourceName   = errors.New("resource name cannot be empty")
	ErrResourceNameTooLong = errors.New("resource name is too long (max 120 characters)")
	ErrNonPositiveCapacity = errors.New("resource capacity must be a positive integer")
)

const MaxResourceNameLength = 120

// Resource is a bookable unit (room, court, studio) owned by one organization.
// Its capacity is the default seat ceiling for events that do not set their own.
type Resource struct {
	id        uuid.UUID
	orgID     uuid.UUID
	name      string
	capacity  int32
	createdAt time.Time
	updatedAt time.Time
}

func NewResource(orgID uuid.UUID, name string, capacity int32) (*Resource, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if capacity <= 0 {
		return nil, ErrNonPositiveCapacity
	}

	return &Resource{
		id:       uuid.New(),
		orgID:    orgID,
		name:     strings.TrimSpace(name),
		capacity: capacity,
	}, nil
}

func ReconstructResource(id, orgID uuid.UUID, name string, capacity int32, createdAt, updatedAt time.Time) *Resource {
	return &Resource{
		id:        id,
		orgID:     orgID,
		name:      name,
		capacity:  capacity,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyResourceName
	}
	if len(name) > MaxResourceNameLength {
		return ErrResourceNameTooLong
	}
	return nil
}

func (r *Resource) ID() uuid.UUID        { return r.id }
func (r *Resource) OrgID() uuid.UUID     { return r.orgID }
func (r *Resource) Name() string         { return r.name }
func (r *Resource) Capacity() int32      { return r.capacity }
func (r *Resource) CreatedAt() time.Time { return r.createdAt }
func (r *Resource) UpdatedAt() time.Time { return r.updatedAt }
