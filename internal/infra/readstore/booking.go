package readstore

import (
	"context"
	"time"

	"coworking-booking/internal/domain/booking"
	"coworking-booking/internal/infra"
	sqlc "coworking-booking/internal/infra/sqlc/generated"
	"coworking-booking/internal/pkg/pgconv"
	"coworking-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingViewQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	ListUpcomingBookingsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUpcomingBookingsByUserParams) ([]sqlc.Bookings, error)
	ListPastBookingsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPastBookingsByUserParams) ([]sqlc.Bookings, error)
	ListUpcomingBookingsWithOwner(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUpcomingBookingsWithOwnerParams) ([]sqlc.ListUpcomingBookingsWithOwnerRow, error)
	ListPastBookingsWithOwner(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPastBookingsWithOwnerParams) ([]sqlc.ListPastBookingsWithOwnerRow, error)
	ListRoomBookingsByDay(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRoomBookingsByDayParams) ([]sqlc.ListRoomBookingsByDayRow, error)
	ListOwnerBookingRangesInWindow(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOwnerBookingRangesInWindowParams) ([]sqlc.ListOwnerBookingRangesInWindowRow, error)
	ListRoomBookingsIntersecting(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRoomBookingsIntersectingParams) ([]sqlc.ListRoomBookingsIntersectingRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking by id", err)
	}
	return bookingViewFromRow(row), nil
}

func (r *BookingReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID, scope queries.Scope, now time.Time, limit int32) ([]*queries.BookingView, error) {
	var rows []sqlc.Bookings
	var err error
	if scope == queries.ScopePast {
		rows, err = r.queries.ListPastBookingsByUser(ctx, r.db, sqlc.ListPastBookingsByUserParams{
			UserID: ownerID,
			Now:    pgconv.TimeToPgtype(now),
			Lim:    limit,
		})
	} else {
		rows, err = r.queries.ListUpcomingBookingsByUser(ctx, r.db, sqlc.ListUpcomingBookingsByUserParams{
			UserID: ownerID,
			Now:    pgconv.TimeToPgtype(now),
			Lim:    limit,
		})
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by owner", err)
	}

	views := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, bookingViewFromRow(row))
	}
	return views, nil
}

func (r *BookingReadStore) ListWithOwner(ctx context.Context, scope queries.Scope, now time.Time, search *string, limit int32) ([]*queries.BookingView, error) {
	if scope == queries.ScopePast {
		rows, err := r.queries.ListPastBookingsWithOwner(ctx, r.db, sqlc.ListPastBookingsWithOwnerParams{
			Now:    pgconv.TimeToPgtype(now),
			Search: pgconv.StringPtrToPgtype(search),
			Lim:    limit,
		})
		if err != nil {
			return nil, infra.WrapRepoErr("failed to list past bookings", err)
		}
		views := make([]*queries.BookingView, 0, len(rows))
		for _, row := range rows {
			views = append(views, ownedBookingView(sqlc.ListUpcomingBookingsWithOwnerRow(row)))
		}
		return views, nil
	}

	rows, err := r.queries.ListUpcomingBookingsWithOwner(ctx, r.db, sqlc.ListUpcomingBookingsWithOwnerParams{
		Now:    pgconv.TimeToPgtype(now),
		Search: pgconv.StringPtrToPgtype(search),
		Lim:    limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list upcoming bookings", err)
	}
	views := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, ownedBookingView(row))
	}
	return views, nil
}

func (r *BookingReadStore) ListRoomDay(ctx context.Context, room string, day booking.TimeRange) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListRoomBookingsByDay(ctx, r.db, sqlc.ListRoomBookingsByDayParams{
		RoomID:   room,
		DayStart: pgconv.TimeToPgtype(day.Start()),
		DayEnd:   pgconv.TimeToPgtype(day.End()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room bookings", err)
	}

	views := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		ownerName := row.OwnerName
		views = append(views, &queries.BookingView{
			ID:               row.ID,
			OwnerID:          row.UserID,
			Room:             row.RoomID,
			Title:            row.Title,
			StartTime:        pgconv.TimeFromPgtype(row.StartTime),
			EndTime:          pgconv.TimeFromPgtype(row.EndTime),
			SubmitterUnit:    pgconv.StringPtrFromPgtype(row.SubmitterUnit),
			SubmitterCompany: pgconv.StringPtrFromPgtype(row.SubmitterCompany),
			OwnerName:        &ownerName,
		})
	}
	return views, nil
}

// OwnerSpansInWindow returns bookings whose start lies in window.
func (r *BookingReadStore) OwnerSpansInWindow(ctx context.Context, ownerID uuid.UUID, window booking.TimeRange) ([]queries.BookingSpan, error) {
	rows, err := r.queries.ListOwnerBookingRangesInWindow(ctx, r.db, sqlc.ListOwnerBookingRangesInWindowParams{
		UserID:      ownerID,
		WindowStart: pgconv.TimeToPgtype(window.Start()),
		WindowEnd:   pgconv.TimeToPgtype(window.End()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list owner booking ranges", err)
	}
	spans := make([]queries.BookingSpan, 0, len(rows))
	for _, row := range rows {
		spans = append(spans, queries.BookingSpan{
			ID:        row.ID,
			StartTime: pgconv.TimeFromPgtype(row.StartTime),
			EndTime:   pgconv.TimeFromPgtype(row.EndTime),
		})
	}
	return spans, nil
}

// RoomSpansIntersecting returns bookings that share at least one instant with window.
func (r *BookingReadStore) RoomSpansIntersecting(ctx context.Context, room string, window booking.TimeRange) ([]queries.BookingSpan, error) {
	rows, err := r.queries.ListRoomBookingsIntersecting(ctx, r.db, sqlc.ListRoomBookingsIntersectingParams{
		RoomID:      room,
		WindowEnd:   pgconv.TimeToPgtype(window.End()),
		WindowStart: pgconv.TimeToPgtype(window.Start()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room booking ranges", err)
	}
	spans := make([]queries.BookingSpan, 0, len(rows))
	for _, row := range rows {
		spans = append(spans, queries.BookingSpan{
			ID:        row.ID,
			StartTime: pgconv.TimeFromPgtype(row.StartTime),
			EndTime:   pgconv.TimeFromPgtype(row.EndTime),
		})
	}
	return spans, nil
}

func bookingViewFromRow(row sqlc.Bookings) *queries.BookingView {
	return &queries.BookingView{
		ID:               row.ID,
		OwnerID:          row.UserID,
		Room:             row.RoomID,
		Title:            row.Title,
		Requirements:     pgconv.StringPtrFromPgtype(row.Requirements),
		StartTime:        pgconv.TimeFromPgtype(row.StartTime),
		EndTime:          pgconv.TimeFromPgtype(row.EndTime),
		SubmitterUnit:    pgconv.StringPtrFromPgtype(row.SubmitterUnit),
		SubmitterCompany: pgconv.StringPtrFromPgtype(row.SubmitterCompany),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

func ownedBookingView(row sqlc.ListUpcomingBookingsWithOwnerRow) *queries.BookingView {
	view := bookingViewFromRow(sqlc.Bookings{
		ID:               row.ID,
		UserID:           row.UserID,
		RoomID:           row.RoomID,
		Title:            row.Title,
		Requirements:     row.Requirements,
		StartTime:        row.StartTime,
		EndTime:          row.EndTime,
		SubmitterUnit:    row.SubmitterUnit,
		SubmitterCompany: row.SubmitterCompany,
		CreatedAt:        row.CreatedAt,
	})
	ownerName := row.OwnerName
	view.OwnerName = &ownerName
	view.OwnerCompany = pgconv.StringPtrFromPgtype(row.OwnerCompany)
	return view
}
