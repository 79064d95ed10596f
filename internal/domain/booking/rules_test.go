//go:build unit

package booking_test

import (
	"testing"
	"time"

	"coworking-booking/internal/domain/booking"
	"coworking-booking/internal/domain/user"
	"coworking-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func span(t *testing.T, startH, startM, endH, endM int) booking.TimeRange {
	t.Helper()
	r, err := booking.NewTimeRange(
		builder.At(2024, time.March, 1, startH, startM),
		builder.At(2024, time.March, 1, endH, endM),
	)
	require.NoError(t, err)
	return r
}

func TestGapRule(t *testing.T) {
	rule := booking.GapRule{MinGap: booking.DefaultMinGap}

	t.Run("interval relations against 10:00-11:00", func(t *testing.T) {
		existing := span(t, 10, 0, 11, 0)
		cases := []struct {
			name      string
			candidate booking.TimeRange
			conflicts bool
		}{
			{"well before", span(t, 8, 0, 9, 0), false},
			{"ends exactly min gap before", span(t, 8, 30, 9, 30), false},
			{"ends one minute inside the gap", span(t, 8, 31, 9, 31), true},
			{"touches the start", span(t, 9, 0, 10, 0), true},
			{"overlaps the start", span(t, 9, 30, 10, 30), true},
			{"identical", span(t, 10, 0, 11, 0), true},
			{"inside", span(t, 10, 15, 10, 45), true},
			{"contains", span(t, 9, 0, 12, 0), true},
			{"overlaps the end", span(t, 10, 30, 11, 30), true},
			{"touches the end", span(t, 11, 0, 12, 0), true},
			{"starts one minute inside the gap", span(t, 11, 29, 12, 0), true},
			{"starts exactly min gap after", span(t, 11, 30, 12, 0), false},
			{"well after", span(t, 13, 0, 14, 0), false},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				assert.Equal(t, tc.conflicts, rule.Conflicts(tc.candidate, existing))
				// symmetric
				assert.Equal(t, tc.conflicts, rule.Conflicts(existing, tc.candidate))
			})
		}
	})

	t.Run("15 minute gap is rejected and 30 minute gap is accepted", func(t *testing.T) {
		existing := []booking.TimeRange{span(t, 9, 0, 10, 0)}

		assert.Equal(t, 0, rule.FirstConflict(span(t, 10, 15, 11, 0), existing))
		assert.Equal(t, -1, rule.FirstConflict(span(t, 10, 30, 11, 0), existing))
	})

	t.Run("first conflict reports the index", func(t *testing.T) {
		existing := []booking.TimeRange{span(t, 7, 0, 8, 0), span(t, 12, 0, 13, 0), span(t, 14, 0, 15, 0)}

		assert.Equal(t, 1, rule.FirstConflict(span(t, 12, 45, 13, 30), existing))
		assert.Equal(t, -1, rule.FirstConflict(span(t, 9, 0, 11, 0), existing))
		assert.Equal(t, -1, rule.FirstConflict(span(t, 9, 0, 11, 0), nil))
	})

	t.Run("zero gap only rejects overlap", func(t *testing.T) {
		noGap := booking.GapRule{}
		existing := span(t, 10, 0, 11, 0)

		assert.False(t, noGap.Conflicts(span(t, 11, 0, 12, 0), existing))
		assert.True(t, noGap.Conflicts(span(t, 10, 59, 12, 0), existing))
	})

	t.Run("search window widens both ends by the gap", func(t *testing.T) {
		window := rule.SearchWindow(span(t, 10, 0, 11, 0))

		assert.Equal(t, builder.At(2024, time.March, 1, 9, 30), window.Start())
		assert.Equal(t, builder.At(2024, time.March, 1, 11, 30), window.End())
	})
}

func TestQuota(t *testing.T) {
	hours := func(h float64) time.Duration { return time.Duration(h * float64(time.Hour)) }
	quota, err := booking.NewQuota(10)
	require.NoError(t, err)

	t.Run("admission at and around the ceiling", func(t *testing.T) {
		cases := []struct {
			name      string
			used      float64
			requested float64
			remaining float64
			accepted  bool
		}{
			{"9.5 of 10", 8.5, 1, 0, true},
			{"exactly 10", 8.5, 1.5, 0, true},
			{"10.5 of 10", 8.5, 2, 1.5, false},
			{"empty month", 0, 10, 0, true},
			{"over an empty month", 0, 10.25, 10, false},
			{"already over", 11, 0.5, 0, false},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				err := quota.Admit(hours(tc.used), hours(tc.requested))
				if tc.accepted {
					require.NoError(t, err)
					return
				}
				require.ErrorIs(t, err, booking.ErrQuotaExceeded)
				var qe *booking.QuotaExceededError
				require.ErrorAs(t, err, &qe)
				assert.Equal(t, tc.remaining, qe.RemainingHours)
			})
		}
	})

	t.Run("error message reports remaining hours", func(t *testing.T) {
		err := quota.Admit(hours(8.5), hours(2))
		assert.Contains(t, err.Error(), "1.50 hours remaining")
	})

	t.Run("non positive quota is invalid", func(t *testing.T) {
		_, err := booking.NewQuota(0)
		require.ErrorIs(t, err, booking.ErrInvalidQuota)
		_, err = booking.NewQuota(-3)
		require.ErrorIs(t, err, booking.ErrInvalidQuota)
	})

	t.Run("default applies when unset or invalid", func(t *testing.T) {
		custom := 4.5
		zero := 0.0

		assert.Equal(t, 10.0, booking.QuotaOrDefault(nil, 10).Hours())
		assert.Equal(t, 4.5, booking.QuotaOrDefault(&custom, 10).Hours())
		assert.Equal(t, 10.0, booking.QuotaOrDefault(&zero, 10).Hours())
		assert.Equal(t, booking.DefaultQuotaHours, booking.QuotaOrDefault(nil, 0).Hours())
	})
}

func TestCancellationPolicy(t *testing.T) {
	policy := booking.CancellationPolicy{LeadTime: booking.DefaultCancelLeadTime}
	ownerID := uuid.New()
	start := builder.At(2024, time.March, 10, 10, 0)
	b := builder.NewBookingBuilder().
		WithOwnerID(ownerID).
		WithSlot(start, start.Add(time.Hour)).
		BuildStored()

	owner := user.NewActor(ownerID, user.RoleMember)
	stranger := user.NewActor(uuid.New(), user.RoleMember)
	admin := user.NewActor(uuid.New(), user.RoleAdmin)

	cases := []struct {
		name  string
		actor user.Actor
		now   time.Time
		errIs error
	}{
		{"owner 25 hours ahead", owner, start.Add(-25 * time.Hour), nil},
		{"owner exactly 24 hours ahead", owner, start.Add(-24 * time.Hour), nil},
		{"owner 23 hours ahead", owner, start.Add(-23 * time.Hour), booking.ErrCancellationWindowClosed},
		{"owner after the start", owner, start.Add(time.Hour), booking.ErrCancellationWindowClosed},
		{"another member", stranger, start.Add(-48 * time.Hour), booking.ErrNotBookingOwner},
		{"admin one hour ahead", admin, start.Add(-time.Hour), nil},
		{"admin after the end", admin, start.Add(3 * time.Hour), nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := policy.CanCancel(b, tc.actor, tc.now)
			if tc.errIs == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestWindows(t *testing.T) {
	t.Run("month window", func(t *testing.T) {
		w := booking.MonthWindow(builder.At(2024, time.February, 15, 12, 0), builder.BRT)

		assert.Equal(t, builder.At(2024, time.February, 1, 0, 0), w.Start())
		assert.Equal(t, builder.At(2024, time.March, 1, 0, 0), w.End())
		assert.Equal(t, 29*24.0, w.Hours())
	})

	t.Run("month window uses the local calendar", func(t *testing.T) {
		// 02:00 UTC on April 1st is still March 31st in BRT
		now := time.Date(2024, time.April, 1, 2, 0, 0, 0, time.UTC)
		w := booking.MonthWindow(now, builder.BRT)

		assert.Equal(t, builder.At(2024, time.March, 1, 0, 0), w.Start())
		assert.True(t, w.Contains(now))
	})

	t.Run("day window", func(t *testing.T) {
		w := booking.DayWindow(builder.At(2024, time.March, 1, 23, 59), builder.BRT)

		assert.Equal(t, builder.At(2024, time.March, 1, 0, 0), w.Start())
		assert.Equal(t, builder.At(2024, time.March, 2, 0, 0), w.End())
		assert.False(t, w.Contains(w.End()))
	})

	t.Run("rules resolve windows in their location", func(t *testing.T) {
		rules := booking.DefaultRules(builder.BRT)
		now := builder.At(2024, time.March, 20, 9, 0)

		assert.Equal(t, booking.MonthWindow(now, builder.BRT), rules.MonthOf(now))
		assert.Equal(t, booking.DayWindow(now, builder.BRT), rules.DayOf(now))
		assert.Equal(t, 30*time.Minute, rules.Gap.MinGap)
		assert.Equal(t, 24*time.Hour, rules.Cancellation.LeadTime)
	})
}

func TestUsage(t *testing.T) {
	window := booking.MonthWindow(builder.At(2024, time.March, 1, 0, 0), builder.BRT)
	quota, err := booking.NewQuota(10)
	require.NoError(t, err)

	t.Run("sum and rounding", func(t *testing.T) {
		ranges := []booking.TimeRange{span(t, 9, 0, 9, 20), span(t, 10, 0, 11, 30), span(t, 14, 0, 14, 20)}
		used := booking.SumDurations(ranges)
		u := booking.NewUsage(window, used, quota)

		assert.Equal(t, 130*time.Minute, used)
		assert.Equal(t, 2.17, u.UsedHours())
		assert.Equal(t, 7.83, u.RemainingHours())
		assert.Equal(t, 10.0, u.QuotaHours())
		assert.InDelta(t, 0.2167, u.Ratio(), 0.0001)
	})

	t.Run("same bookings give the same usage", func(t *testing.T) {
		ranges := []booking.TimeRange{span(t, 9, 0, 9, 20), span(t, 9, 50, 10, 10)}
		first := booking.NewUsage(window, booking.SumDurations(ranges), quota)
		second := booking.NewUsage(window, booking.SumDurations(ranges), quota)

		assert.Equal(t, first.UsedHours(), second.UsedHours())
		assert.Equal(t, 0.67, first.UsedHours())
	})

	t.Run("overrun is visible and remaining floors at zero", func(t *testing.T) {
		u := booking.NewUsage(window, 12*time.Hour, quota)

		assert.Equal(t, 0.0, u.RemainingHours())
		assert.InDelta(t, 1.2, u.Ratio(), 1e-9)
	})

	t.Run("empty month", func(t *testing.T) {
		u := booking.NewUsage(window, booking.SumDurations(nil), quota)

		assert.Equal(t, 0.0, u.UsedHours())
		assert.Equal(t, 0.0, u.Ratio())
	})
}

// Pure rule walk-through of a member's first bookings of the month.
func TestAdmissionWalkthrough(t *testing.T) {
	rules := booking.DefaultRules(builder.BRT)
	quota := rules.QuotaFor(nil)
	var admitted []booking.TimeRange

	admit := func(candidate booking.TimeRange) error {
		if err := quota.Admit(booking.SumDurations(admitted), candidate.Duration()); err != nil {
			return err
		}
		if rules.Gap.FirstConflict(candidate, admitted) >= 0 {
			return booking.ErrRoomConflict
		}
		admitted = append(admitted, candidate)
		return nil
	}

	require.NoError(t, admit(span(t, 9, 0, 11, 0)))
	assert.Equal(t, 2*time.Hour, booking.SumDurations(admitted))

	require.ErrorIs(t, admit(span(t, 11, 15, 13, 0)), booking.ErrRoomConflict)

	require.NoError(t, admit(span(t, 11, 30, 13, 0)))
	assert.Equal(t, 3.5, booking.SumDurations(admitted).Hours())
}
