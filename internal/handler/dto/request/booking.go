package request

import (
	"time"

	"coworking-booking/internal/domain/user"
	"coworking-booking/internal/usecase/commands"
	"coworking-booking/internal/usecase/queries"
)

type AdmitBookingRequest struct {
	Room             string    `json:"room" binding:"required,max=100"`
	StartTime        time.Time `json:"start_time" binding:"required"`
	EndTime          time.Time `json:"end_time" binding:"required"`
	Title            string    `json:"title" binding:"required,max=200"`
	Requirements     *string   `json:"requirements" binding:"omitempty,max=2000"`
	SubmitterUnit    *string   `json:"submitter_unit" binding:"omitempty,unit"`
	SubmitterCompany *string   `json:"submitter_company" binding:"omitempty,max=200"`
}

func (r *AdmitBookingRequest) ToCommand(actor user.Actor) commands.AdmitBookingRequest {
	return commands.AdmitBookingRequest{
		Actor:            actor,
		Room:             r.Room,
		Start:            r.StartTime,
		End:              r.EndTime,
		Title:            r.Title,
		Requirements:     r.Requirements,
		SubmitterUnit:    r.SubmitterUnit,
		SubmitterCompany: r.SubmitterCompany,
	}
}

type BookingListQuery struct {
	Scope  string `form:"scope" binding:"omitempty,booking_scope"`
	Search string `form:"q" binding:"omitempty,max=200"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

// ParsedScope defaults to upcoming.
func (q *BookingListQuery) ParsedScope() (queries.Scope, error) {
	return queries.ParseScope(q.Scope)
}

type RoomScheduleQuery struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

// Day resolves the date in loc. An empty date yields the zero time, which the
// query reads as today.
func (q *RoomScheduleQuery) Day(loc *time.Location) (time.Time, error) {
	if q.Date == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation("2006-01-02", q.Date, loc)
}

type UsageQuery struct {
	Source string `form:"source" binding:"omitempty,oneof=aggregate summation"`
}
