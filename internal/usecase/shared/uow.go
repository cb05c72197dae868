package shared

import (
	"context"
	"time"

	"studiobook/internal/domain/booking"
	"studiobook/internal/domain/resource"
	"studiobook/internal/domain/schedule"
	"studiobook/internal/infra/db"

	"github.com/google/uuid"
)

// UnitOfWork brackets a command's check-then-persist sequence in one
// transaction so the scheduling and admission gates observe a consistent
// snapshot and are serialized against concurrent writers via row locks.
type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}

type Tx interface {
	Resources() ResourceRepository
	Events() EventRepository
	Bookings() BookingRepository
	DB() db.DBTX
}

type ResourceRepository interface {
	Create(ctx context.Context, r *resource.Resource) (uuid.UUID, error)
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*resource.Resource, error)
	// LockForSchedule takes the per-resource row lock that serializes
	// conflict checking against concurrent event writes.
	LockForSchedule(ctx context.Context, orgID, resourceID uuid.UUID) (*resource.Resource, error)
}

type EventRepository interface {
	Create(ctx context.Context, ev *schedule.Event) (uuid.UUID, error)
	Update(ctx context.Context, ev *schedule.Event) error
	Delete(ctx context.Context, orgID, id uuid.UUID) error
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*schedule.Event, error)
	// ListByResource returns every persisted event for one resource within
	// one organization, the scan set for CheckNoConflict.
	ListByResource(ctx context.Context, orgID, resourceID uuid.UUID) ([]*schedule.Event, error)
	// LockForAdmission locks the event row and returns the capacity snapshot
	// plus the event start, serializing admission against concurrent bookings.
	LockForAdmission(ctx context.Context, orgID, id uuid.UUID) (booking.EventSnapshot, time.Time, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	SaveStatus(ctx context.Context, b *booking.Booking) error
	FindByIDForUpdate(ctx context.Context, orgID, id uuid.UUID) (*booking.Booking, error)
	// CountConfirmed counts persisted confirmed bookings for an event,
	// leaving out excludeID during in-place updates.
	CountConfirmed(ctx context.Context, orgID, eventID uuid.UUID, excludeID *uuid.UUID) (int64, error)
}
