package queries

import (
	"context"
	"sort"
	"time"

	"coworking-booking/internal/domain/booking"
	"coworking-booking/internal/domain/profile"
	"coworking-booking/internal/domain/user"
	"coworking-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

const (
	UsageSourceAggregate = "aggregate"
	UsageSourceSummation = "summation"
)

type UsageReadStore interface {
	// MonthlyHours evaluates get_user_monthly_hours for the window.
	MonthlyHours(ctx context.Context, userID uuid.UUID, window booking.TimeRange) (float64, error)
	ListProfileUsage(ctx context.Context, window booking.TimeRange) ([]ProfileUsageRecord, error)
}

type UsageQueries interface {
	MonthlyUsage(ctx context.Context, userID uuid.UUID) (*UsageView, error)
	MonthlyUsageBySummation(ctx context.Context, userID uuid.UUID) (*UsageView, error)
	Overview(ctx context.Context, actor user.Actor) ([]*UsageOverviewRow, error)
}

type usageQueriesImpl struct {
	usage    UsageReadStore
	bookings BookingReadStore
	profiles ProfileReadStore
	rules    booking.Rules
	clock    clock.Clock
}

func NewUsageQueries(usage UsageReadStore, bookings BookingReadStore, profiles ProfileReadStore, settings Settings, clk clock.Clock) UsageQueries {
	return &usageQueriesImpl{
		usage:    usage,
		bookings: bookings,
		profiles: profiles,
		rules:    settings.Rules,
		clock:    clk,
	}
}

func (q *usageQueriesImpl) MonthlyUsage(ctx context.Context, userID uuid.UUID) (*UsageView, error) {
	quota, err := q.quotaOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	window := q.rules.MonthOf(q.clock.Now())
	hours, err := q.usage.MonthlyHours(ctx, userID, window)
	if err != nil {
		return nil, translateNotFound(err, profile.ErrProfileNotFound)
	}

	used := time.Duration(hours * float64(time.Hour))
	return toUsageView(userID, booking.NewUsage(window, used, quota), UsageSourceAggregate), nil
}

func (q *usageQueriesImpl) MonthlyUsageBySummation(ctx context.Context, userID uuid.UUID) (*UsageView, error) {
	quota, err := q.quotaOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	window := q.rules.MonthOf(q.clock.Now())
	spans, err := q.bookings.OwnerSpansInWindow(ctx, userID, window)
	if err != nil {
		return nil, translateNotFound(err, profile.ErrProfileNotFound)
	}

	var used time.Duration
	for _, s := range spans {
		used += s.EndTime.Sub(s.StartTime)
	}
	return toUsageView(userID, booking.NewUsage(window, used, quota), UsageSourceSummation), nil
}

// Overview lists approved members by usage ratio, heaviest first.
func (q *usageQueriesImpl) Overview(ctx context.Context, actor user.Actor) ([]*UsageOverviewRow, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}

	window := q.rules.MonthOf(q.clock.Now())
	records, err := q.usage.ListProfileUsage(ctx, window)
	if err != nil {
		return nil, translateNotFound(err, profile.ErrProfileNotFound)
	}

	rows := make([]*UsageOverviewRow, 0, len(records))
	for _, r := range records {
		u := booking.NewUsage(window, time.Duration(r.UsedHours*float64(time.Hour)), q.rules.QuotaFor(r.MonthlyHoursQuota))
		rows = append(rows, &UsageOverviewRow{
			ProfileID:      r.ProfileID,
			FullName:       r.FullName,
			CompanyName:    r.CompanyName,
			Unit:           r.Unit,
			UsedHours:      u.UsedHours(),
			QuotaHours:     u.QuotaHours(),
			RemainingHours: u.RemainingHours(),
			Ratio:          u.Ratio(),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Ratio > rows[j].Ratio
	})
	return rows, nil
}

func (q *usageQueriesImpl) quotaOf(ctx context.Context, userID uuid.UUID) (booking.Quota, error) {
	p, err := q.profiles.FindByID(ctx, userID)
	if err != nil {
		return booking.Quota{}, translateNotFound(err, profile.ErrProfileNotFound)
	}
	return q.rules.QuotaFor(p.MonthlyHoursQuota), nil
}

func toUsageView(userID uuid.UUID, u booking.Usage, source string) *UsageView {
	return &UsageView{
		UserID:         userID,
		MonthStart:     u.Window.Start(),
		MonthEnd:       u.Window.End(),
		UsedHours:      u.UsedHours(),
		QuotaHours:     u.QuotaHours(),
		RemainingHours: u.RemainingHours(),
		Ratio:          u.Ratio(),
		Source:         source,
	}
}
