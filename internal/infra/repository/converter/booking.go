package converter

import (
	"coworking-booking/internal/domain/booking"
	sqlc "coworking-booking/internal/infra/sqlc/generated"
	"coworking-booking/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:               b.ID(),
		UserID:           b.OwnerID(),
		RoomID:           b.Room().String(),
		Title:            b.Title().String(),
		Requirements:     pgconv.StringPtrToPgtype(b.Requirements().Ptr()),
		StartTime:        pgconv.TimeToPgtype(b.Slot().Start()),
		EndTime:          pgconv.TimeToPgtype(b.Slot().End()),
		SubmitterUnit:    pgconv.StringPtrToPgtype(b.Submitter().Unit()),
		SubmitterCompany: pgconv.StringPtrToPgtype(b.Submitter().Company()),
		CreatedAt:        pgconv.TimeToPgtype(b.CreatedAt()),
	}
}
