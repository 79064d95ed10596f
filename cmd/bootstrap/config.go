package bootstrap

import (
	"coworking-booking/internal/domain/booking"
	"coworking-booking/internal/pkg/config"
	"coworking-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
	BookingRulesModule,
)

// BookingRulesModule derives rules and query settings from an already provided config.
var BookingRulesModule = fx.Module("config/booking",
	fx.Provide(
		NewBookingRules,
		NewQuerySettings,
	),
)

// NewBookingRules turns the Booking section into the admission and cancellation rules.
func NewBookingRules(cfg config.Config) (booking.Rules, error) {
	loc, err := cfg.Booking.Location()
	if err != nil {
		return booking.Rules{}, err
	}

	rules := booking.DefaultRules(loc)
	if cfg.Booking.MinGap > 0 {
		rules.Gap.MinGap = cfg.Booking.MinGap
	}
	if cfg.Booking.CancelLeadTime > 0 {
		rules.Cancellation.LeadTime = cfg.Booking.CancelLeadTime
	}
	if cfg.Booking.DefaultQuotaHours > 0 {
		rules.DefaultQuotaHours = cfg.Booking.DefaultQuotaHours
	}
	return rules, nil
}

func NewQuerySettings(cfg config.Config, rules booking.Rules) queries.Settings {
	return queries.Settings{
		Rules:          rules,
		HistoryLimit:   cfg.Booking.HistoryLimit,
		AdminListLimit: cfg.Booking.AdminListLimit,
		Rooms:          cfg.Booking.Rooms,
	}
}
