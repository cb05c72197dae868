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

type ResourceReadStore struct {
	db db.DBTX
}

func NewResourceReadStore(dbtx db.DBTX) *ResourceReadStore {
	return &ResourceReadStore{db: dbtx}
}

func (s *ResourceReadStore) FindByID(ctx context.Context, orgID, id uuid.UUID) (*queries.ResourceView, error) {
	row := s.db.QueryRow(ctx,
		`SELECT id, name, capacity, created_at, updated_at
		 FROM resources
		 WHERE id = $1 AND org_id = $2`,
		id, orgID,
	)

	view, err := scanResourceView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find resource by ID", err)
	}

	return view, nil
}

func (s *ResourceReadStore) FindByOrg(ctx context.Context, orgID uuid.UUID) ([]*queries.ResourceView, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, capacity, created_at, updated_at
		 FROM resources
		 WHERE org_id = $1
		 ORDER BY name`,
		orgID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list resources", err)
	}
	defer rows.Close()

	var views []*queries.ResourceView
	for rows.Next() {
		view, err := scanResourceView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan resource view", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read resource views", err)
	}

	return views, nil
}

func scanResourceView(row rowScanner) (*queries.ResourceView, error) {
	var (
		id                   uuid.UUID
		name                 string
		capacity             int32
		createdAt, updatedAt pgtype.Timestamptz
	)

	if err := row.Scan(&id, &name, &capacity, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	return &queries.ResourceView{
		ID:        id,
		Name:      name,
		Capacity:  capacity,
		CreatedAt: createdAt.Time,
		UpdatedAt: updatedAt.Time,
	}, nil
}
