package components

import (
	"rentride/internal/infra/readrepo"
	repo_impl "rentride/internal/infra/repository"
	"rentride/internal/usecase/commands"
	"rentride/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewVehicleRepository,
			fx.As(new(commands.VehicleRepository)),
		),
		fx.Annotate(
			repo_impl.NewSlotRepository,
			fx.As(new(commands.SlotRepository)),
			fx.As(new(queries.SlotReader)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repo_impl.NewIdempotencyRepository,
			fx.As(new(commands.IdempotencyRepository)),
		),
		// Read-side repositories for queries
		fx.Annotate(
			readrepo.NewVehicleViewRepository,
			fx.As(new(queries.VehicleRepository)),
		),
		fx.Annotate(
			readrepo.NewBookingViewRepository,
			fx.As(new(queries.BookingViewRepo)),
		),
	),
)
