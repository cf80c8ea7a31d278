package components

import (
	"rentride/internal/domain/pricing"
	"rentride/internal/pkg/clock"
	"rentride/internal/pkg/config"
	"rentride/internal/usecase"
	"rentride/internal/usecase/commands"
	"rentride/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewFeePolicy,
)

// NewFeePolicy turns the fee configuration into the pricing policy applied to
// every quote and booking.
func NewFeePolicy(cfg config.Config) pricing.FeePolicy {
	return pricing.FeePolicy{
		SecurityDeposit:    pricing.NewMoney(cfg.Fee.SecurityDeposit),
		PlatformFeePercent: cfg.Fee.PlatformFeePercent,
	}
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewQuoteQueries,
		queries.NewBookingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
