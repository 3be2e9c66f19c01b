package bootstrap

import (
	"context"
	"log/slog"

	"study-booking/internal/infra/calendar"
	"study-booking/internal/pkg/config"
	"study-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var CalendarModule = fx.Module("calendar",
	fx.Provide(
		NewCalendarProvider,
		fx.Annotate(
			NewCalendarSynchronizer,
			fx.As(new(shared.CalendarSynchronizer)),
			fx.As(new(shared.BusyCalendar)),
		),
	),
)

func NewCalendarProvider(cfg config.Config, logger *slog.Logger) (calendar.Provider, error) {
	return calendar.NewProvider(context.Background(), cfg.Calendar, logger)
}

func NewCalendarSynchronizer(cfg config.Config, provider calendar.Provider, logger *slog.Logger) *calendar.Synchronizer {
	targets := []string{cfg.Calendar.ID, cfg.Calendar.FallbackID}
	return calendar.NewSynchronizer(provider, targets, cfg.Calendar.Timeout, logger)
}
