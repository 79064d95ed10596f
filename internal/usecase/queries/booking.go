package queries

import (
	"context"
	"strings"
	"time"

	"coworking-booking/internal/domain/booking"
	"coworking-booking/internal/domain/user"
	"coworking-booking/internal/pkg/clock"
	"coworking-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidScope = errs.NewValidation("scope must be upcoming or past")

type Scope string

const (
	ScopeUpcoming Scope = "upcoming"
	ScopePast     Scope = "past"
)

// ParseScope defaults to upcoming.
func ParseScope(s string) (Scope, error) {
	switch Scope(strings.ToLower(strings.TrimSpace(s))) {
	case "", ScopeUpcoming:
		return ScopeUpcoming, nil
	case ScopePast:
		return ScopePast, nil
	default:
		return "", ErrInvalidScope
	}
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// ListByOwner orders upcoming ascending and past descending by start time.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, scope Scope, now time.Time, limit int32) ([]*BookingView, error)
	ListWithOwner(ctx context.Context, scope Scope, now time.Time, search *string, limit int32) ([]*BookingView, error)
	ListRoomDay(ctx context.Context, room string, day booking.TimeRange) ([]*BookingView, error)
	OwnerSpansInWindow(ctx context.Context, ownerID uuid.UUID, window booking.TimeRange) ([]BookingSpan, error)
	RoomSpansIntersecting(ctx context.Context, room string, window booking.TimeRange) ([]BookingSpan, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	History(ctx context.Context, userID uuid.UUID, scope Scope, limit int) ([]*BookingView, error)
	AdminList(ctx context.Context, actor user.Actor, scope Scope, search string, limit int) ([]*BookingView, error)
	RoomSchedule(ctx context.Context, room string, day time.Time) ([]*BookingView, error)
	Rooms() []string
}

var ErrBookingNotFound = errs.NewNotFound("booking not found")

type bookingQueriesImpl struct {
	store    BookingReadStore
	settings Settings
	clock    clock.Clock
}

func NewBookingQueries(store BookingReadStore, settings Settings, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{store: store, settings: settings, clock: clk}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, ErrBookingNotFound)
	}
	return view, nil
}

func (q *bookingQueriesImpl) History(ctx context.Context, userID uuid.UUID, scope Scope, limit int) ([]*BookingView, error) {
	limit = ClampLimit(limit, q.settings.HistoryLimit)
	return q.store.ListByOwner(ctx, userID, scope, q.clock.Now(), int32(limit))
}

func (q *bookingQueriesImpl) AdminList(ctx context.Context, actor user.Actor, scope Scope, search string, limit int) ([]*BookingView, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	limit = ClampLimit(limit, q.settings.AdminListLimit)

	var term *string
	if s := strings.TrimSpace(search); s != "" {
		term = &s
	}
	return q.store.ListWithOwner(ctx, scope, q.clock.Now(), term, int32(limit))
}

func (q *bookingQueriesImpl) RoomSchedule(ctx context.Context, room string, day time.Time) ([]*BookingView, error) {
	r, err := booking.NewRoom(room)
	if err != nil {
		return nil, err
	}
	if day.IsZero() {
		day = q.clock.Now()
	}
	return q.store.ListRoomDay(ctx, r.String(), q.settings.Rules.DayOf(day))
}

func (q *bookingQueriesImpl) Rooms() []string {
	out := make([]string, len(q.settings.Rooms))
	copy(out, q.settings.Rooms)
	return out
}
