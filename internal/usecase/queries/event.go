package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type EventQueries interface {
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*EventView, error)
	// ListByResource returns events for one resource whose windows intersect
	// [from, to). Zero bounds mean an unbounded side.
	ListByResource(ctx context.Context, orgID, resourceID uuid.UUID, from, to time.Time) ([]*EventListItem, error)
}

type EventViewRepo interface {
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*EventView, error)
	FindByResource(ctx context.Context, orgID, resourceID uuid.UUID, from, to time.Time) ([]*EventListItem, error)
}

type eventQueriesImpl struct {
	repo EventViewRepo
}

func NewEventQueries(repo EventViewRepo) EventQueries {
	return &eventQueriesImpl{repo: repo}
}

func (q *eventQueriesImpl) GetByID(ctx context.Context, orgID, id uuid.UUID) (*EventView, error) {
	return q.repo.FindByID(ctx, orgID, id)
}

func (q *eventQueriesImpl) ListByResource(ctx context.Context, orgID, resourceID uuid.UUID, from, to time.Time) ([]*EventListItem, error) {
	return q.repo.FindByResource(ctx, orgID, resourceID, from, to)
}
