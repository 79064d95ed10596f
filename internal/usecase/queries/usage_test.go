//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"coworking-booking/internal/domain/booking"
	"coworking-booking/internal/domain/profile"
	"coworking-booking/internal/domain/user"
	"coworking-booking/internal/infra"
	"coworking-booking/internal/pkg/clock"
	"coworking-booking/internal/pkg/errs"
	"coworking-booking/internal/usecase/queries"
	"coworking-booking/tests/common/builder"
	queriesmock "coworking-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type storeFixture struct {
	bookings      *queriesmock.MockBookingReadStore
	usage         *queriesmock.MockUsageReadStore
	profiles      *queriesmock.MockProfileReadStore
	announcements *queriesmock.MockAnnouncementReadStore
	settings      queries.Settings
	clock         *clock.ManualClock
}

func newStoreFixture(t *testing.T, now time.Time) *storeFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	return &storeFixture{
		bookings:      queriesmock.NewMockBookingReadStore(ctrl),
		usage:         queriesmock.NewMockUsageReadStore(ctrl),
		profiles:      queriesmock.NewMockProfileReadStore(ctrl),
		announcements: queriesmock.NewMockAnnouncementReadStore(ctrl),
		settings: queries.Settings{
			Rules:          booking.DefaultRules(builder.BRT),
			HistoryLimit:   50,
			AdminListLimit: 100,
			Rooms:          []string{"Sala de Reunião 1", "Sala de Reunião 2"},
		},
		clock: clock.NewManualClock(now),
	}
}

func (f *storeFixture) usageQueries() queries.UsageQueries {
	return queries.NewUsageQueries(f.usage, f.bookings, f.profiles, f.settings, f.clock)
}

func notFound() error {
	return infra.WrapRepoErr("row not found", nil, infra.KindNotFound)
}

func spanOf(start time.Time, d time.Duration) queries.BookingSpan {
	return queries.BookingSpan{ID: uuid.New(), StartTime: start, EndTime: start.Add(d)}
}

func TestMonthlyUsage(t *testing.T) {
	now := builder.At(2024, time.March, 15, 12, 0)
	member := builder.NewProfileBuilder()
	march := booking.MonthWindow(now, builder.BRT)

	t.Run("both sources agree", func(t *testing.T) {
		f := newStoreFixture(t, now)
		uc := f.usageQueries()
		spans := []queries.BookingSpan{
			spanOf(builder.At(2024, time.March, 1, 9, 0), 20*time.Minute),
			spanOf(builder.At(2024, time.March, 4, 9, 0), 90*time.Minute),
			spanOf(builder.At(2024, time.March, 8, 14, 0), 20*time.Minute),
		}

		f.profiles.EXPECT().FindByID(gomock.Any(), member.ID).Return(member.BuildView(), nil).Times(2)
		f.usage.EXPECT().MonthlyHours(gomock.Any(), member.ID, march).Return(130.0/60.0, nil)
		f.bookings.EXPECT().OwnerSpansInWindow(gomock.Any(), member.ID, march).Return(spans, nil)

		aggregate, err := uc.MonthlyUsage(context.Background(), member.ID)
		require.NoError(t, err)
		summation, err := uc.MonthlyUsageBySummation(context.Background(), member.ID)
		require.NoError(t, err)

		assert.InDelta(t, aggregate.UsedHours, summation.UsedHours, 0.01)
		assert.Equal(t, 2.17, summation.UsedHours)
		assert.Equal(t, 7.83, summation.RemainingHours)
		assert.Equal(t, queries.UsageSourceAggregate, aggregate.Source)
		assert.Equal(t, queries.UsageSourceSummation, summation.Source)
		assert.Equal(t, march.Start(), aggregate.MonthStart)
		assert.Equal(t, march.End(), aggregate.MonthEnd)
	})

	t.Run("explicit quota", func(t *testing.T) {
		f := newStoreFixture(t, now)
		uc := f.usageQueries()
		custom := builder.NewProfileBuilder().WithQuota(4)

		f.profiles.EXPECT().FindByID(gomock.Any(), custom.ID).Return(custom.BuildView(), nil)
		f.usage.EXPECT().MonthlyHours(gomock.Any(), custom.ID, march).Return(5.0, nil)

		view, err := uc.MonthlyUsage(context.Background(), custom.ID)
		require.NoError(t, err)
		assert.Equal(t, 4.0, view.QuotaHours)
		assert.Equal(t, 0.0, view.RemainingHours)
		assert.InDelta(t, 1.25, view.Ratio, 1e-9)
	})

	t.Run("unknown profile", func(t *testing.T) {
		f := newStoreFixture(t, now)

		f.profiles.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, notFound())

		_, err := f.usageQueries().MonthlyUsage(context.Background(), uuid.New())
		require.ErrorIs(t, err, profile.ErrProfileNotFound)
	})

	t.Run("storage failure", func(t *testing.T) {
		f := newStoreFixture(t, now)

		f.profiles.EXPECT().FindByID(gomock.Any(), member.ID).Return(member.BuildView(), nil)
		f.bookings.EXPECT().OwnerSpansInWindow(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("query", errors.New("timeout")))

		_, err := f.usageQueries().MonthlyUsageBySummation(context.Background(), member.ID)
		assert.True(t, errs.Is(err, errs.ErrStorageUnavailable))
	})
}

func TestUsageOverview(t *testing.T) {
	now := builder.At(2024, time.March, 15, 12, 0)
	admin := user.NewActor(uuid.New(), user.RoleAdmin)
	quota := 20.0

	t.Run("sorted by ratio with defaults applied", func(t *testing.T) {
		f := newStoreFixture(t, now)
		light := uuid.New()
		heavy := uuid.New()
		custom := uuid.New()

		f.usage.EXPECT().ListProfileUsage(gomock.Any(), booking.MonthWindow(now, builder.BRT)).Return([]queries.ProfileUsageRecord{
			{ProfileID: light, FullName: "Light", UsedHours: 1},
			{ProfileID: heavy, FullName: "Heavy", UsedHours: 9},
			{ProfileID: custom, FullName: "Custom", UsedHours: 10, MonthlyHoursQuota: &quota},
		}, nil)

		rows, err := f.usageQueries().Overview(context.Background(), admin)
		require.NoError(t, err)
		require.Len(t, rows, 3)

		assert.Equal(t, []uuid.UUID{heavy, custom, light}, []uuid.UUID{rows[0].ProfileID, rows[1].ProfileID, rows[2].ProfileID})
		assert.Equal(t, 10.0, rows[0].QuotaHours)
		assert.Equal(t, 20.0, rows[1].QuotaHours)
		assert.Equal(t, 1.0, rows[0].RemainingHours)
	})

	t.Run("members are refused", func(t *testing.T) {
		f := newStoreFixture(t, now)

		_, err := f.usageQueries().Overview(context.Background(), user.NewActor(uuid.New(), user.RoleMember))
		require.ErrorIs(t, err, user.ErrAdminRequired)
	})
}
