package components

import (
	"studiobook/internal/pkg/clock"
	"studiobook/internal/pkg/config"
	"studiobook/internal/usecase/commands"
	"studiobook/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) config.BookingConfig {
		return cfg.Booking
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewResourceUseCase,
		commands.NewEventUseCase,
		commands.NewBookingUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewResourceQueries,
		queries.NewEventQueries,
		queries.NewBookingQueries,
	),
)
