package repository

import (
	"context"

	"studiobook/internal/domain/booking"
	"studiobook/internal/infra"
	"studiobook/internal/infra/db"
	"studiobook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO bookings (id, org_id, event_id, person_id, status)
		 VALUES ($1, $2, $3, $4, $5)`,
		b.ID(), b.OrgID(), b.EventID(), b.PersonID(), b.Status().String(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return b.ID(), nil
}

func (r *BookingRepository) SaveStatus(ctx context.Context, b *booking.Booking) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE bookings
		 SET status = $1, cancelled_at = $2
		 WHERE id = $3 AND org_id = $4`,
		b.Status().String(), pgconv.TimestamptzFromTimePtr(b.CancelledAt()), b.ID(), b.OrgID(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	return nil
}

// FindByIDForUpdate locks the booking row so a cancellation is not raced by
// another status change on the same booking.
func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, orgID, id uuid.UUID) (*booking.Booking, error) {
	var (
		bID, bOrgID        uuid.UUID
		eventID, personID  uuid.UUID
		status             string
		createdAt          pgtype.Timestamptz
		cancelledAt        pgtype.Timestamptz
	)

	err := r.db.QueryRow(ctx,
		`SELECT id, org_id, event_id, person_id, status, created_at, cancelled_at
		 FROM bookings
		 WHERE id = $1 AND org_id = $2
		 FOR UPDATE`,
		id, orgID,
	).Scan(&bID, &bOrgID, &eventID, &personID, &status, &createdAt, &cancelledAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	return booking.ReconstructBooking(
		bID, bOrgID, eventID, personID,
		booking.Status(status),
		createdAt.Time, pgconv.TimePtrFromPgtype(cancelledAt),
	), nil
}

func (r *BookingRepository) CountConfirmed(ctx context.Context, orgID, eventID uuid.UUID, excludeID *uuid.UUID) (int64, error) {
	sql := `SELECT count(*)
	 FROM bookings
	 WHERE org_id = $1 AND event_id = $2 AND status = 'confirmed'`
	args := []any{orgID, eventID}

	if excludeID != nil {
		sql += ` AND id <> $3`
		args = append(args, *excludeID)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count confirmed bookings", err)
	}

	return count, nil
}
