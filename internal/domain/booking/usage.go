package booking

import "time"

// Usage is derived from bookings on every read and never stored.
type Usage struct {
	Window TimeRange
	Used   time.Duration
	Quota  Quota
}

func NewUsage(window TimeRange, used time.Duration, quota Quota) Usage {
	return Usage{Window: window, Used: used, Quota: quota}
}

// SumDurations adds up the booked time of the given ranges.
func SumDurations(ranges []TimeRange) time.Duration {
	var total time.Duration
	for _, r := range ranges {
		total += r.Duration()
	}
	return total
}

func (u Usage) UsedHours() float64 {
	return RoundHours(u.Used.Hours())
}

func (u Usage) QuotaHours() float64 {
	return RoundHours(u.Quota.Hours())
}

func (u Usage) RemainingHours() float64 {
	return RoundHours(u.Quota.Remaining(u.Used).Hours())
}

// Ratio is used / quota, unclamped so overruns made before a quota cut stay visible.
func (u Usage) Ratio() float64 {
	if u.Quota.limit <= 0 {
		return 0
	}
	return float64(u.Used) / float64(u.Quota.limit)
}
