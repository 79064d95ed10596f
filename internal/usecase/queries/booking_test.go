//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"coworking-booking/internal/domain/booking"
	"coworking-booking/internal/domain/user"
	"coworking-booking/internal/usecase/queries"
	"coworking-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestParseScope(t *testing.T) {
	cases := []struct {
		in    string
		want  queries.Scope
		valid bool
	}{
		{"", queries.ScopeUpcoming, true},
		{"upcoming", queries.ScopeUpcoming, true},
		{" PAST ", queries.ScopePast, true},
		{"all", "", false},
	}
	for _, tc := range cases {
		got, err := queries.ParseScope(tc.in)
		if !tc.valid {
			require.ErrorIs(t, err, queries.ErrInvalidScope, tc.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestBookingQueries(t *testing.T) {
	now := builder.At(2024, time.March, 15, 12, 0)
	admin := user.NewActor(uuid.New(), user.RoleAdmin)

	t.Run("history clamps to the configured limit", func(t *testing.T) {
		f := newStoreFixture(t, now)
		q := queries.NewBookingQueries(f.bookings, f.settings, f.clock)
		owner := uuid.New()
		views := []*queries.BookingView{builder.NewBookingBuilder().WithOwnerID(owner).BuildView()}

		f.bookings.EXPECT().ListByOwner(gomock.Any(), owner, queries.ScopePast, now, int32(50)).Return(views, nil)

		got, err := q.History(context.Background(), owner, queries.ScopePast, 0)
		require.NoError(t, err)
		assert.Equal(t, views, got)
	})

	t.Run("admin list trims the search term", func(t *testing.T) {
		f := newStoreFixture(t, now)
		q := queries.NewBookingQueries(f.bookings, f.settings, f.clock)

		f.bookings.EXPECT().ListWithOwner(gomock.Any(), queries.ScopeUpcoming, now, gomock.Any(), int32(queries.MaxListLimit)).
			DoAndReturn(func(_ context.Context, _ queries.Scope, _ time.Time, search *string, _ int32) ([]*queries.BookingView, error) {
				require.NotNil(t, search)
				assert.Equal(t, "acme", *search)
				return nil, nil
			})

		_, err := q.AdminList(context.Background(), admin, queries.ScopeUpcoming, "  acme ", 1000)
		require.NoError(t, err)
	})

	t.Run("admin list without search", func(t *testing.T) {
		f := newStoreFixture(t, now)
		q := queries.NewBookingQueries(f.bookings, f.settings, f.clock)

		f.bookings.EXPECT().ListWithOwner(gomock.Any(), queries.ScopePast, now, (*string)(nil), int32(100)).Return(nil, nil)

		_, err := q.AdminList(context.Background(), admin, queries.ScopePast, "   ", 0)
		require.NoError(t, err)
	})

	t.Run("admin list needs admin", func(t *testing.T) {
		f := newStoreFixture(t, now)
		q := queries.NewBookingQueries(f.bookings, f.settings, f.clock)

		_, err := q.AdminList(context.Background(), user.NewActor(uuid.New(), user.RoleMember), queries.ScopeUpcoming, "", 0)
		require.ErrorIs(t, err, user.ErrAdminRequired)
	})

	t.Run("room schedule defaults to today", func(t *testing.T) {
		f := newStoreFixture(t, now)
		q := queries.NewBookingQueries(f.bookings, f.settings, f.clock)

		f.bookings.EXPECT().ListRoomDay(gomock.Any(), "Sala de Reunião 1", booking.DayWindow(now, builder.BRT)).Return(nil, nil)

		_, err := q.RoomSchedule(context.Background(), " Sala de Reunião 1 ", time.Time{})
		require.NoError(t, err)
	})

	t.Run("room schedule rejects blank rooms", func(t *testing.T) {
		f := newStoreFixture(t, now)
		q := queries.NewBookingQueries(f.bookings, f.settings, f.clock)

		_, err := q.RoomSchedule(context.Background(), "", now)
		require.ErrorIs(t, err, booking.ErrEmptyRoom)
	})

	t.Run("missing booking", func(t *testing.T) {
		f := newStoreFixture(t, now)
		q := queries.NewBookingQueries(f.bookings, f.settings, f.clock)

		f.bookings.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, notFound())

		_, err := q.GetByID(context.Background(), uuid.New())
		require.ErrorIs(t, err, queries.ErrBookingNotFound)
	})

	t.Run("rooms are a copy", func(t *testing.T) {
		f := newStoreFixture(t, now)
		q := queries.NewBookingQueries(f.bookings, f.settings, f.clock)

		rooms := q.Rooms()
		rooms[0] = "changed"
		assert.Equal(t, "Sala de Reunião 1", q.Rooms()[0])
	})
}
