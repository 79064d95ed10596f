package response

import (
	"time"

	"coworking-booking/internal/domain/booking"
	"coworking-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID               uuid.UUID `json:"id"`
	OwnerID          uuid.UUID `json:"owner_id"`
	Room             string    `json:"room"`
	Title            string    `json:"title"`
	Requirements     *string   `json:"requirements,omitempty"`
	StartTime        time.Time `json:"start_time"`
	EndTime          time.Time `json:"end_time"`
	DurationHours    float64   `json:"duration_hours"`
	SubmitterUnit    *string   `json:"submitter_unit,omitempty"`
	SubmitterCompany *string   `json:"submitter_company,omitempty"`
	OwnerName        *string   `json:"owner_name,omitempty"`
	OwnerCompany     *string   `json:"owner_company,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type BookingListResponse struct {
	Items []*BookingResponse `json:"items"`
	Count int                `json:"count"`
}

type RoomScheduleResponse struct {
	Room  string             `json:"room"`
	Items []*BookingResponse `json:"items"`
}

type RoomsResponse struct {
	Rooms []string `json:"rooms"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	res, err := copyAs[BookingResponse](v)
	if err != nil {
		return nil, err
	}
	res.DurationHours = booking.RoundHours(v.EndTime.Sub(v.StartTime).Hours())
	return &res, nil
}

func FromBookingViews(views []*queries.BookingView) (*BookingListResponse, error) {
	items := make([]*BookingResponse, 0, len(views))
	for _, v := range views {
		res, err := FromBookingView(v)
		if err != nil {
			return nil, err
		}
		items = append(items, res)
	}
	return &BookingListResponse{Items: items, Count: len(items)}, nil
}
