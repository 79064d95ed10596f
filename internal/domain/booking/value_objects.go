package booking

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MaxRoomLength         = 100
	MaxTitleLength        = 200
	MaxRequirementsLength = 2000
	MaxSubmitterLength    = 120
)

// TimeRange is a half-open interval [start, end).
type TimeRange struct {
	start time.Time
	end   time.Time
}

func NewTimeRange(start, end time.Time) (TimeRange, error) {
	if !end.After(start) {
		return TimeRange{}, ErrInvalidRange
	}
	return TimeRange{start: start, end: end}, nil
}

func (r TimeRange) Start() time.Time        { return r.start }
func (r TimeRange) End() time.Time          { return r.end }
func (r TimeRange) Duration() time.Duration { return r.end.Sub(r.start) }
func (r TimeRange) Hours() float64          { return r.Duration().Hours() }

func (r TimeRange) Overlaps(o TimeRange) bool {
	return r.start.Before(o.end) && o.start.Before(r.end)
}

func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.start) && t.Before(r.end)
}

func (r TimeRange) IsZero() bool {
	return r.start.IsZero() && r.end.IsZero()
}

type Room struct {
	value string
}

func NewRoom(s string) (Room, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Room{}, ErrEmptyRoom
	}
	if utf8.RuneCountInString(s) > MaxRoomLength {
		return Room{}, ErrRoomTooLong
	}
	return Room{value: s}, nil
}

func (r Room) String() string { return r.value }

type Title struct {
	value string
}

func NewTitle(s string) (Title, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Title{}, ErrEmptyTitle
	}
	if utf8.RuneCountInString(s) > MaxTitleLength {
		return Title{}, ErrTitleTooLong
	}
	return Title{value: s}, nil
}

func (t Title) String() string { return t.value }

type Requirements struct {
	value string
}

func NewRequirements(s *string) (Requirements, error) {
	if s == nil {
		return Requirements{}, nil
	}
	v := strings.TrimSpace(*s)
	if utf8.RuneCountInString(v) > MaxRequirementsLength {
		return Requirements{}, ErrRequirementsTooLong
	}
	return Requirements{value: v}, nil
}

func (r Requirements) String() string { return r.value }

func (r Requirements) Ptr() *string {
	if r.value == "" {
		return nil
	}
	v := r.value
	return &v
}

// Submitter is the unit/company snapshot taken when the booking is made.
// Later profile edits do not change it.
type Submitter struct {
	unit    *string
	company *string
}

func NewSubmitter(unit, company *string) Submitter {
	return Submitter{unit: clip(unit), company: clip(company)}
}

func (s Submitter) Unit() *string    { return s.unit }
func (s Submitter) Company() *string { return s.company }

func clip(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	if utf8.RuneCountInString(v) > MaxSubmitterLength {
		v = string([]rune(v)[:MaxSubmitterLength])
	}
	return &v
}

// RoundHours rounds to 2 decimal places for display.
func RoundHours(h float64) float64 {
	return math.Round(h*100) / 100
}
