package components

import (
	"studiobook/internal/infra/db"
	"studiobook/internal/infra/readstore"
	"studiobook/internal/infra/uow"
	"studiobook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// Write side goes through the unit of work; repositories are built
		// per-transaction inside it, never provided here.
		uow.NewPostgresUoW,
		// Read side
		fx.Annotate(
			readstore.NewResourceReadStore,
			fx.As(new(queries.ResourceViewRepo)),
		),
		fx.Annotate(
			readstore.NewEventReadStore,
			fx.As(new(queries.EventViewRepo)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
