package queries

import "coworking-booking/internal/domain/booking"

// Settings are the read-side knobs taken from configuration.
type Settings struct {
	Rules          booking.Rules
	HistoryLimit   int
	AdminListLimit int
	Rooms          []string
}
