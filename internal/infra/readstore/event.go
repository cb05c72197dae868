package readstore

import (
	"context"
	"time"

	"studiobook/internal/domain/booking"
	"studiobook/internal/domain/schedule"
	"studiobook/internal/infra"
	"studiobook/internal/infra/db"
	"studiobook/internal/pkg/pgconv"
	"studiobook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type EventReadStore struct {
	db db.DBTX
}

func NewEventReadStore(dbtx db.DBTX) *EventReadStore {
	return &EventReadStore{db: dbtx}
}

const eventViewColumns = `
	e.id, e.resource_id, r.name, r.capacity, e.title, e.starts_at, e.ends_at,
	e.capacity, e.kind, e.created_at, e.updated_at,
	(SELECT count(*) FROM bookings b
	  WHERE b.event_id = e.id AND b.status = 'confirmed') AS confirmed_count`

func (s *EventReadStore) FindByID(ctx context.Context, orgID, id uuid.UUID) (*queries.EventView, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+eventViewColumns+`
		 FROM events e
		 JOIN resources r ON r.id = e.resource_id
		 WHERE e.id = $1 AND e.org_id = $2`,
		id, orgID,
	)

	view, err := scanEventView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find event by ID", err)
	}

	return view, nil
}

func (s *EventReadStore) FindByResource(ctx context.Context, orgID, resourceID uuid.UUID, from, to time.Time) ([]*queries.EventListItem, error) {
	// Half-open window filter: an event is in range when it starts before the
	// upper bound and ends after the lower bound.
	sql := `SELECT ` + eventViewColumns + `
	 FROM events e
	 JOIN resources r ON r.id = e.resource_id
	 WHERE e.org_id = $1 AND e.resource_id = $2`
	args := []any{orgID, resourceID}

	if !from.IsZero() {
		args = append(args, from)
		sql += ` AND e.ends_at > $3`
	}
	if !to.IsZero() {
		args = append(args, to)
		if from.IsZero() {
			sql += ` AND e.starts_at < $3`
		} else {
			sql += ` AND e.starts_at < $4`
		}
	}
	sql += ` ORDER BY e.starts_at`

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list events by resource", err)
	}
	defer rows.Close()

	var items []*queries.EventListItem
	for rows.Next() {
		view, err := scanEventView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan event view", err)
		}
		items = append(items, toEventListItem(view))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read event views", err)
	}

	return items, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEventView(row rowScanner) (*queries.EventView, error) {
	var (
		id, resourceID       uuid.UUID
		resourceName         string
		resourceCapacity     int32
		title, kind          string
		startsAt, endsAt     pgtype.Timestamptz
		capacity             int32
		createdAt, updatedAt pgtype.Timestamptz
		confirmed            int64
	)

	err := row.Scan(
		&id, &resourceID, &resourceName, &resourceCapacity, &title,
		&startsAt, &endsAt, &capacity, &kind, &createdAt, &updatedAt, &confirmed,
	)
	if err != nil {
		return nil, err
	}

	effective := booking.EffectiveCapacity(booking.EventSnapshot{
		ID:               id,
		Kind:             schedule.EventKind(kind),
		Capacity:         capacity,
		ResourceCapacity: resourceCapacity,
	})

	remaining := effective - confirmed
	if remaining < 0 {
		remaining = 0
	}

	return &queries.EventView{
		ID:             id,
		ResourceID:     resourceID,
		ResourceName:   resourceName,
		Title:          title,
		StartsAt:       startsAt.Time,
		EndsAt:         endsAt.Time,
		Kind:           kind,
		Capacity:       effective,
		ConfirmedCount: confirmed,
		Remaining:      remaining,
		CreatedAt:      createdAt.Time,
		UpdatedAt:      updatedAt.Time,
	}, nil
}

func toEventListItem(v *queries.EventView) *queries.EventListItem {
	return &queries.EventListItem{
		ID:             v.ID,
		ResourceID:     v.ResourceID,
		Title:          v.Title,
		StartsAt:       v.StartsAt,
		EndsAt:         v.EndsAt,
		Kind:           v.Kind,
		Capacity:       v.Capacity,
		ConfirmedCount: v.ConfirmedCount,
		Remaining:      v.Remaining,
	}
}
