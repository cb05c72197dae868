package queries

import (
	"context"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*BookingView, error)
	ListByEvent(ctx context.Context, orgID, eventID uuid.UUID) ([]*BookingView, error)
	ListByPerson(ctx context.Context, orgID, personID uuid.UUID) ([]*BookingView, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*BookingView, error)
	FindByEvent(ctx context.Context, orgID, eventID uuid.UUID) ([]*BookingView, error)
	FindByPerson(ctx context.Context, orgID, personID uuid.UUID) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, orgID, id uuid.UUID) (*BookingView, error) {
	return q.repo.FindByID(ctx, orgID, id)
}

func (q *bookingQueriesImpl) ListByEvent(ctx context.Context, orgID, eventID uuid.UUID) ([]*BookingView, error) {
	return q.repo.FindByEvent(ctx, orgID, eventID)
}

func (q *bookingQueriesImpl) ListByPerson(ctx context.Context, orgID, personID uuid.UUID) ([]*BookingView, error) {
	return q.repo.FindByPerson(ctx, orgID, personID)
}
