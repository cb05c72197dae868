package commands

import (
	"context"

	"studiobook/internal/domain/resource"
	"studiobook/internal/infra"
	"studiobook/internal/pkg/errs"
	"studiobook/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrDuplicateResourceName = errs.New("resource name already in use")

type CreateResourceRequest struct {
	Name     string
	Capacity int32
}

type CreateResourceResult struct {
	ResourceID uuid.UUID
}

type ResourceCommands interface {
	CreateResource(ctx context.Context, req CreateResourceRequest, orgID uuid.UUID) (*CreateResourceResult, error)
}

type resourceUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewResourceUseCase(uow shared.UnitOfWork) ResourceCommands {
	return &resourceUseCaseImpl{uow: uow}
}

func (uc *resourceUseCaseImpl) CreateResource(ctx context.Context, req CreateResourceRequest, orgID uuid.UUID) (*CreateResourceResult, error) {
	res, err := resource.NewResource(orgID, req.Name, req.Capacity)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Resources().Create(ctx, res); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(derr, ErrDuplicateResourceName)
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateResourceResult{ResourceID: res.ID()}, nil
}
