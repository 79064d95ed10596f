package booking

import (
	"time"

	"coworking-booking/internal/domain/user"
)

const (
	DefaultMinGap         = 30 * time.Minute
	DefaultCancelLeadTime = 24 * time.Hour
	DefaultQuotaHours     = 10.0
)

// GapRule requires at least MinGap of idle time between two bookings of the
// same room. A gap of exactly MinGap is allowed.
type GapRule struct {
	MinGap time.Duration
}

// Conflicts covers overlap, containment and near-adjacency in one inequality:
// the ranges conflict iff each starts before the other's end plus the gap.
func (g GapRule) Conflicts(candidate, existing TimeRange) bool {
	return candidate.start.Before(existing.end.Add(g.MinGap)) &&
		existing.start.Before(candidate.end.Add(g.MinGap))
}

// FirstConflict returns the index of the first conflicting range, or -1.
func (g GapRule) FirstConflict(candidate TimeRange, existing []TimeRange) int {
	for i, e := range existing {
		if g.Conflicts(candidate, e) {
			return i
		}
	}
	return -1
}

// SearchWindow is the widest interval whose intersecting bookings can conflict
// with the candidate.
func (g GapRule) SearchWindow(candidate TimeRange) TimeRange {
	return TimeRange{
		start: candidate.start.Add(-g.MinGap),
		end:   candidate.end.Add(g.MinGap),
	}
}

// Quota is a monthly ceiling on booked time.
type Quota struct {
	limit time.Duration
}

func NewQuota(hours float64) (Quota, error) {
	if hours <= 0 {
		return Quota{}, ErrInvalidQuota
	}
	return Quota{limit: hoursToDuration(hours)}, nil
}

// QuotaOrDefault applies the default when the profile has no explicit quota.
func QuotaOrDefault(hours *float64, fallback float64) Quota {
	if hours != nil {
		if q, err := NewQuota(*hours); err == nil {
			return q
		}
	}
	q, err := NewQuota(fallback)
	if err != nil {
		return Quota{limit: hoursToDuration(DefaultQuotaHours)}
	}
	return q
}

func (q Quota) Limit() time.Duration { return q.limit }
func (q Quota) Hours() float64       { return q.limit.Hours() }

func (q Quota) Remaining(used time.Duration) time.Duration {
	return max(q.limit-used, 0)
}

// Admit accepts iff used + requested <= limit. Durations are compared exactly
// so fractional hours never drift.
func (q Quota) Admit(used, requested time.Duration) error {
	if used+requested <= q.limit {
		return nil
	}
	return &QuotaExceededError{RemainingHours: RoundHours(q.Remaining(used).Hours())}
}

func hoursToDuration(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}

// CancellationPolicy decides who may delete a booking and until when.
type CancellationPolicy struct {
	LeadTime time.Duration
}

// CanCancel lets admins cancel anything. Owners need now + LeadTime <= start.
func (p CancellationPolicy) CanCancel(b *Booking, actor user.Actor, now time.Time) error {
	if actor.IsAdmin() {
		return nil
	}
	if b.ownerID != actor.ID {
		return ErrNotBookingOwner
	}
	if now.Add(p.LeadTime).After(b.slot.start) {
		return ErrCancellationWindowClosed
	}
	return nil
}

// MonthWindow is [first day of now's month, first day of next month) in loc.
func MonthWindow(now time.Time, loc *time.Location) TimeRange {
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	return TimeRange{start: start, end: start.AddDate(0, 1, 0)}
}

// DayWindow is [local midnight, next local midnight) of the day containing t.
func DayWindow(t time.Time, loc *time.Location) TimeRange {
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return TimeRange{start: start, end: start.AddDate(0, 0, 1)}
}

// Rules bundles the configurable admission and cancellation parameters.
type Rules struct {
	Gap               GapRule
	Cancellation      CancellationPolicy
	DefaultQuotaHours float64
	Location          *time.Location
}

func DefaultRules(loc *time.Location) Rules {
	if loc == nil {
		loc = time.Local
	}
	return Rules{
		Gap:               GapRule{MinGap: DefaultMinGap},
		Cancellation:      CancellationPolicy{LeadTime: DefaultCancelLeadTime},
		DefaultQuotaHours: DefaultQuotaHours,
		Location:          loc,
	}
}

func (r Rules) QuotaFor(hours *float64) Quota {
	return QuotaOrDefault(hours, r.DefaultQuotaHours)
}

func (r Rules) MonthOf(now time.Time) TimeRange {
	return MonthWindow(now, r.Location)
}

func (r Rules) DayOf(t time.Time) TimeRange {
	return DayWindow(t, r.Location)
}
