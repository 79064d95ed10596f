//go:build unit || e2e

package builder

import (
	"time"

	"coworking-booking/internal/domain/booking"
	"coworking-booking/internal/domain/user"
	reqdto "coworking-booking/internal/handler/dto/request"
	sqlc "coworking-booking/internal/infra/sqlc/generated"
	"coworking-booking/internal/usecase/commands"
	"coworking-booking/internal/usecase/queries"
	"coworking-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// BRT is the booking time zone used across tests. A fixed offset keeps tests
// independent of the host tz database.
var BRT = time.FixedZone("BRT", -3*60*60)

// At builds a BRT timestamp on the given day.
func At(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, BRT)
}

type BookingBuilder struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Room         string
	Start        time.Time
	End          time.Time
	Title        string
	Requirements *string
	Unit         *string
	Company      *string
	CreatedAt    time.Time
	OwnerName    *string
	OwnerCompany *string
}

func NewBookingBuilder() *BookingBuilder {
	start := At(2024, time.March, 1, 9, 0)
	unit := "07"
	company := "Acme Ltda"
	return &BookingBuilder{
		ID:        uuid.New(),
		OwnerID:   uuid.New(),
		Room:      "Sala de Reunião 1",
		Start:     start,
		End:       start.Add(2 * time.Hour),
		Title:     "Sprint planning",
		Unit:      &unit,
		Company:   &company,
		CreatedAt: start.Add(-72 * time.Hour),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.NewBooking(booking.NewBookingParams{
		OwnerID:      b.OwnerID,
		Room:         b.Room,
		Start:        b.Start,
		End:          b.End,
		Title:        b.Title,
		Requirements: b.Requirements,
		Unit:         b.Unit,
		Company:      b.Company,
	}, b.CreatedAt)
}

// BuildStored skips validation, like a row read back from the database.
func (b *BookingBuilder) BuildStored() *booking.Booking {
	return booking.ReconstructBooking(b.ID, b.OwnerID, b.Room, b.Start, b.End,
		b.Title, b.Requirements, b.Unit, b.Company, b.CreatedAt)
}

func (b *BookingBuilder) BuildRange() booking.TimeRange {
	r, err := booking.NewTimeRange(b.Start, b.End)
	if err != nil {
		panic("builder: invalid booking range: " + err.Error())
	}
	return r
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:               b.ID,
		OwnerID:          b.OwnerID,
		Room:             b.Room,
		Title:            b.Title,
		Requirements:     b.Requirements,
		StartTime:        b.Start,
		EndTime:          b.End,
		SubmitterUnit:    b.Unit,
		SubmitterCompany: b.Company,
		CreatedAt:        b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:               b.ID,
		OwnerID:          b.OwnerID,
		Room:             b.Room,
		Title:            b.Title,
		Requirements:     b.Requirements,
		StartTime:        b.Start,
		EndTime:          b.End,
		SubmitterUnit:    b.Unit,
		SubmitterCompany: b.Company,
		CreatedAt:        b.CreatedAt,
		OwnerName:        b.OwnerName,
		OwnerCompany:     b.OwnerCompany,
	}
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	return sqlc.Bookings{
		ID:               b.ID,
		UserID:           b.OwnerID,
		RoomID:           b.Room,
		Title:            b.Title,
		Requirements:     text(b.Requirements),
		StartTime:        pgtype.Timestamptz{Time: b.Start, Valid: true},
		EndTime:          pgtype.Timestamptz{Time: b.End, Valid: true},
		SubmitterUnit:    text(b.Unit),
		SubmitterCompany: text(b.Company),
		CreatedAt:        pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *BookingBuilder) BuildRequestDTO() reqdto.AdmitBookingRequest {
	return reqdto.AdmitBookingRequest{
		Room:             b.Room,
		StartTime:        b.Start,
		EndTime:          b.End,
		Title:            b.Title,
		Requirements:     b.Requirements,
		SubmitterUnit:    b.Unit,
		SubmitterCompany: b.Company,
	}
}

func (b *BookingBuilder) BuildCommand(actor user.Actor) commands.AdmitBookingRequest {
	return commands.AdmitBookingRequest{
		Actor:            actor,
		Room:             b.Room,
		Start:            b.Start,
		End:              b.End,
		Title:            b.Title,
		Requirements:     b.Requirements,
		SubmitterUnit:    b.Unit,
		SubmitterCompany: b.Company,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithOwnerID(id uuid.UUID) *BookingBuilder {
	b.OwnerID = id
	return b
}

func (b *BookingBuilder) WithRoom(room string) *BookingBuilder {
	b.Room = room
	return b
}

func (b *BookingBuilder) WithSlot(start, end time.Time) *BookingBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *BookingBuilder) WithTitle(title string) *BookingBuilder {
	b.Title = title
	return b
}

func (b *BookingBuilder) WithRequirements(s string) *BookingBuilder {
	b.Requirements = &s
	return b
}

func (b *BookingBuilder) WithoutSubmitter() *BookingBuilder {
	b.Unit = nil
	b.Company = nil
	return b
}

func (b *BookingBuilder) WithCreatedAt(t time.Time) *BookingBuilder {
	b.CreatedAt = t
	return b
}

func text(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
