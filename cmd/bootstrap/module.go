package bootstrap

import (
	"study-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module wires the production server: env config, Postgres, the configured
// calendar provider and mail transports.
var Module = fx.Options(
	fx.WithLogger(NewFxLogger),

	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	CalendarModule,
	MailModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
