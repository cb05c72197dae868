package queries

import (
	"context"

	"github.com/google/uuid"
)

type ResourceQueries interface {
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*ResourceView, error)
	ListByOrg(ctx context.Context, orgID uuid.UUID) ([]*ResourceView, error)
}

type ResourceViewRepo interface {
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*ResourceView, error)
	FindByOrg(ctx context.Context, orgID uuid.UUID) ([]*ResourceView, error)
}

type resourceQueriesImpl struct {
	repo ResourceViewRepo
}

func NewResourceQueries(repo ResourceViewRepo) ResourceQueries {
	return &resourceQueriesImpl{repo: repo}
}

func (q *resourceQueriesImpl) GetByID(ctx context.Context, orgID, id uuid.UUID) (*ResourceView, error) {
	return q.repo.FindByID(ctx, orgID, id)
}

func (q *resourceQueriesImpl) ListByOrg(ctx context.Context, orgID uuid.UUID) ([]*ResourceView, error) {
	return q.repo.FindByOrg(ctx, orgID)
}
