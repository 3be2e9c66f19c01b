package bootstrap

import (
	"log/slog"

	"study-booking/internal/infra/mail"
	"study-booking/internal/pkg/config"
	"study-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var MailModule = fx.Module("mail",
	fx.Provide(
		fx.Annotate(
			NewMailDispatcher,
			fx.As(new(shared.Notifier)),
		),
	),
)

func NewMailDispatcher(cfg config.Config, logger *slog.Logger) *mail.Dispatcher {
	return mail.NewDispatcherFromConfig(cfg.Mail, logger)
}
