package components

import (
	"study-booking/internal/domain/availability"
	"study-booking/internal/domain/booking"
	"study-booking/internal/pkg/clock"
	"study-booking/internal/pkg/config"
	"study-booking/internal/usecase"
	"study-booking/internal/usecase/commands"
	"study-booking/internal/usecase/oracle"
	"study-booking/internal/usecase/queries"
	"study-booking/internal/usecase/shared"

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
	NewBookingWindow,
	shared.NewLinks,
	func(clock clock.Clock, window availability.Window) *booking.Services {
		return &booking.Services{
			Clock:  clock,
			Window: window,
		}
	},
	fx.Annotate(
		oracle.NewOracle,
		fx.As(new(shared.AvailabilityOracle)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewParticipantCommands,
		commands.NewBookingCommands,
		commands.NewBlockedSlotCommands,
		commands.NewSettingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewParticipantQueries,
		queries.NewBookingQueries,
		queries.NewAvailabilityQueries,
		queries.NewBlockedSlotQueries,
		queries.NewSettingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewBookingWindow(cfg config.Config) (availability.Window, error) {
	loc, err := cfg.Booking.Location()
	if err != nil {
		return availability.Window{}, err
	}
	return availability.NewWindow(loc, cfg.Booking.DayStartHour, cfg.Booking.DayEndHour, cfg.Booking.MaxWeeks)
}
