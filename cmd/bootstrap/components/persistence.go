package components

import (
	"study-booking/internal/infra/readstore"
	sqlc "study-booking/internal/infra/sqlc/generated"
	"study-booking/internal/infra/uow"
	"study-booking/internal/usecase/queries"
	"study-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Participant
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ParticipantReadQueries)),
		),
		fx.Annotate(
			readstore.NewParticipantReadStore,
			fx.As(new(queries.ParticipantReadStore)),
		),
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// BlockedSlot
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BlockedSlotReadQueries)),
		),
		fx.Annotate(
			readstore.NewBlockedSlotReadStore,
			fx.As(new(queries.BlockedSlotReadStore)),
			fx.As(new(shared.BlockedSlotReader)),
		),
		// Setting
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SettingReadQueries)),
		),
		fx.Annotate(
			readstore.NewSettingReadStore,
			fx.As(new(queries.SettingReadStore)),
		),
	),
)

// Write repositories are created per transaction inside the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
