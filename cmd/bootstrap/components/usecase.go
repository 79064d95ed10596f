package components

import (
	"coworking-booking/internal/domain/booking"
	"coworking-booking/internal/pkg/clock"
	"coworking-booking/internal/usecase/commands"
	"coworking-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	func(rules booking.Rules) clock.Clock {
		return clock.NewSystemClock(rules.Location)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingUseCase,
		commands.NewProfileUseCase,
		commands.NewAnnouncementUseCase,
		commands.NewNotificationUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewBookingQueries,
		queries.NewUsageQueries,
		queries.NewProfileQueries,
		queries.NewAnnouncementQueries,
		queries.NewNotificationQueries,
	),
)
