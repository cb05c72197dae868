package repository

import (
	"context"

	"studiobook/internal/domain/resource"
	"studiobook/internal/infra"
	"studiobook/internal/infra/db"
	"studiobook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ResourceRepository struct {
	db db.DBTX
}

func NewResourceRepository(dbtx db.DBTX) *ResourceRepository {
	return &ResourceRepository{db: dbtx}
}

func (r *ResourceRepository) Create(ctx context.Context, res *resource.Resource) (uuid.UUID, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO resources (id, org_id, name, capacity)
		 VALUES ($1, $2, $3, $4)`,
		res.ID(), res.OrgID(), res.Name(), res.Capacity(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create resource", err)
	}

	return res.ID(), nil
}

func (r *ResourceRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*resource.Resource, error) {
	return r.scanOne(ctx,
		`SELECT id, org_id, name, capacity, created_at, updated_at
		 FROM resources
		 WHERE id = $1 AND org_id = $2`,
		id, orgID,
	)
}

// LockForSchedule acquires the per-resource row lock. Concurrent event writes
// on the same resource queue behind it, so conflict checking and the insert
// that follows act on a stable snapshot.
func (r *ResourceRepository) LockForSchedule(ctx context.Context, orgID, resourceID uuid.UUID) (*resource.Resource, error) {
	return r.scanOne(ctx,
		`SELECT id, org_id, name, capacity, created_at, updated_at
		 FROM resources
		 WHERE id = $1 AND org_id = $2
		 FOR UPDATE`,
		resourceID, orgID,
	)
}

func (r *ResourceRepository) scanOne(ctx context.Context, sql string, args ...any) (*resource.Resource, error) {
	var (
		id, orgID            uuid.UUID
		name                 string
		capacity             int32
		createdAt, updatedAt pgtype.Timestamptz
	)

	err := r.db.QueryRow(ctx, sql, args...).Scan(&id, &orgID, &name, &capacity, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find resource", err)
	}

	return resource.ReconstructResource(id, orgID, name, capacity, createdAt.Time, updatedAt.Time), nil
}
