package readstore

import (
	"context"

	"studiobook/internal/infra"
	"studiobook/internal/infra/db"
	"studiobook/internal/pkg/pgconv"
	"studiobook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const bookingViewSelect = `
	SELECT b.id, b.event_id, e.title, e.starts_at, b.person_id, p.name,
	       b.status, b.created_at, b.cancelled_at
	FROM bookings b
	JOIN events e ON e.id = b.event_id
	JOIN persons p ON p.id = b.person_id`

func (s *BookingReadStore) FindByID(ctx context.Context, orgID, id uuid.UUID) (*queries.BookingView, error) {
	row := s.db.QueryRow(ctx,
		bookingViewSelect+` WHERE b.id = $1 AND b.org_id = $2`,
		id, orgID,
	)

	view, err := scanBookingView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return view, nil
}

func (s *BookingReadStore) FindByEvent(ctx context.Context, orgID, eventID uuid.UUID) ([]*queries.BookingView, error) {
	return s.list(ctx,
		bookingViewSelect+` WHERE b.org_id = $1 AND b.event_id = $2 ORDER BY b.created_at`,
		orgID, eventID,
	)
}

func (s *BookingReadStore) FindByPerson(ctx context.Context, orgID, personID uuid.UUID) ([]*queries.BookingView, error) {
	return s.list(ctx,
		bookingViewSelect+` WHERE b.org_id = $1 AND b.person_id = $2 ORDER BY e.starts_at`,
		orgID, personID,
	)
}

func (s *BookingReadStore) list(ctx context.Context, sql string, args ...any) ([]*queries.BookingView, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var views []*queries.BookingView
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking view", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking views", err)
	}

	return views, nil
}

func scanBookingView(row rowScanner) (*queries.BookingView, error) {
	var (
		id, eventID, personID uuid.UUID
		eventTitle            string
		eventStartsAt         pgtype.Timestamptz
		personName, status    string
		createdAt             pgtype.Timestamptz
		cancelledAt           pgtype.Timestamptz
	)

	err := row.Scan(
		&id, &eventID, &eventTitle, &eventStartsAt, &personID, &personName,
		&status, &createdAt, &cancelledAt,
	)
	if err != nil {
		return nil, err
	}

	return &queries.BookingView{
		ID:            id,
		EventID:       eventID,
		EventTitle:    eventTitle,
		EventStartsAt: eventStartsAt.Time,
		PersonID:      personID,
		PersonName:    personName,
		Status:        status,
		CreatedAt:     createdAt.Time,
		CancelledAt:   pgconv.TimePtrFromPgtype(cancelledAt),
	}, nil
}
