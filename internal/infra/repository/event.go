package repository

import (
	"context"
	"time"

	"studiobook/internal/domain/booking"
	"studiobook/internal/domain/schedule"
	"studiobook/internal/infra"
	"studiobook/internal/infra/db"
	"studiobook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type EventRepository struct {
	db db.DBTX
}

func NewEventRepository(dbtx db.DBTX) *EventRepository {
	return &EventRepository{db: dbtx}
}

func (r *EventRepository) Create(ctx context.Context, ev *schedule.Event) (uuid.UUID, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO events (id, org_id, resource_id, title, starts_at, ends_at, capacity, kind)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		ev.ID(), ev.OrgID(), ev.ResourceID(), ev.Title(),
		ev.Slot().Start(), ev.Slot().End(), ev.Capacity(), ev.Kind().String(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create event", err)
	}

	return ev.ID(), nil
}

func (r *EventRepository) Update(ctx context.Context, ev *schedule.Event) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE events
		 SET resource_id = $1, title = $2, starts_at = $3, ends_at = $4,
		     capacity = $5, kind = $6, updated_at = now()
		 WHERE id = $7 AND org_id = $8`,
		ev.ResourceID(), ev.Title(), ev.Slot().Start(), ev.Slot().End(),
		ev.Capacity(), ev.Kind().String(), ev.ID(), ev.OrgID(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update event", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("event not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *EventRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM events WHERE id = $1 AND org_id = $2`,
		id, orgID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to delete event", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("event not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*schedule.Event, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, org_id, resource_id, title, starts_at, ends_at, capacity, kind, created_at, updated_at
		 FROM events
		 WHERE id = $1 AND org_id = $2`,
		id, orgID,
	)

	ev, err := scanEvent(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find event", err)
	}

	return ev, nil
}

func (r *EventRepository) ListByResource(ctx context.Context, orgID, resourceID uuid.UUID) ([]*schedule.Event, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, org_id, resource_id, title, starts_at, ends_at, capacity, kind, created_at, updated_at
		 FROM events
		 WHERE org_id = $1 AND resource_id = $2
		 ORDER BY starts_at`,
		orgID, resourceID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list events by resource", err)
	}
	defer rows.Close()

	var events []*schedule.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan event", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read events", err)
	}

	return events, nil
}

// LockForAdmission locks the event row so concurrent admissions for the same
// event queue up, then returns what CheckCapacity needs: the event's own
// capacity and kind plus the resource capacity backing the zero fallback.
func (r *EventRepository) LockForAdmission(ctx context.Context, orgID, id uuid.UUID) (booking.EventSnapshot, time.Time, error) {
	var (
		snap     booking.EventSnapshot
		kind     string
		startsAt pgtype.Timestamptz
	)

	err := r.db.QueryRow(ctx,
		`SELECT e.id, e.kind, e.capacity, r.capacity, e.starts_at
		 FROM events e
		 JOIN resources r ON r.id = e.resource_id
		 WHERE e.id = $1 AND e.org_id = $2
		 FOR UPDATE OF e`,
		id, orgID,
	).Scan(&snap.ID, &kind, &snap.Capacity, &snap.ResourceCapacity, &startsAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return booking.EventSnapshot{}, time.Time{}, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return booking.EventSnapshot{}, time.Time{}, infra.WrapRepoErr("failed to lock event for admission", err)
	}

	snap.Kind = schedule.EventKind(kind)
	return snap, startsAt.Time, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*schedule.Event, error) {
	var (
		id, orgID, resourceID uuid.UUID
		title, kind           string
		startsAt, endsAt      pgtype.Timestamptz
		capacity              int32
		createdAt, updatedAt  pgtype.Timestamptz
	)

	if err := row.Scan(&id, &orgID, &resourceID, &title, &startsAt, &endsAt, &capacity, &kind, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	return schedule.ReconstructEvent(
		id, orgID, resourceID, title,
		schedule.ReconstructTimeSlot(startsAt.Time, endsAt.Time),
		capacity, schedule.EventKind(kind),
		createdAt.Time, updatedAt.Time,
	), nil
}
