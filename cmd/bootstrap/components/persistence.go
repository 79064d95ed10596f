package components

import (
	"coworking-booking/internal/infra/readstore"
	sqlc "coworking-booking/internal/infra/sqlc/generated"
	"coworking-booking/internal/infra/uow"
	"coworking-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Write-side repositories are built per transaction by the unit of work, so
// only the read stores and the unit of work itself are provided here.
var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Profile
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ProfileViewQueries)),
		),
		fx.Annotate(
			readstore.NewProfileReadStore,
			fx.As(new(queries.ProfileReadStore)),
			fx.As(new(queries.UserReadStore)),
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
		// Usage
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UsageViewQueries)),
		),
		fx.Annotate(
			readstore.NewUsageReadStore,
			fx.As(new(queries.UsageReadStore)),
		),
		// Announcement
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AnnouncementViewQueries)),
		),
		fx.Annotate(
			readstore.NewAnnouncementReadStore,
			fx.As(new(queries.AnnouncementReadStore)),
		),
		// Notification
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.NotificationViewQueries)),
		),
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(queries.NotificationReadStore)),
		),
	),
)

var unitOfWorkModule = fx.Module("persistence/uow",
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
