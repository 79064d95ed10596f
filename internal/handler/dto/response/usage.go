package response

import (
	"time"

	"coworking-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UsageResponse struct {
	UserID         uuid.UUID `json:"user_id"`
	MonthStart     time.Time `json:"month_start"`
	MonthEnd       time.Time `json:"month_end"`
	UsedHours      float64   `json:"used_hours"`
	QuotaHours     float64   `json:"quota_hours"`
	RemainingHours float64   `json:"remaining_hours"`
	Ratio          float64   `json:"ratio"`
	Source         string    `json:"source"`
}

type UsageOverviewItemResponse struct {
	ProfileID      uuid.UUID `json:"profile_id"`
	FullName       string    `json:"full_name"`
	CompanyName    *string   `json:"company_name,omitempty"`
	Unit           *string   `json:"unit,omitempty"`
	UsedHours      float64   `json:"used_hours"`
	QuotaHours     float64   `json:"quota_hours"`
	RemainingHours float64   `json:"remaining_hours"`
	Ratio          float64   `json:"ratio"`
}

type UsageOverviewResponse struct {
	Items []*UsageOverviewItemResponse `json:"items"`
}

func FromUsageView(v *queries.UsageView) (*UsageResponse, error) {
	res, err := copyAs[UsageResponse](v)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func FromUsageOverview(rows []*queries.UsageOverviewRow) (*UsageOverviewResponse, error) {
	items, err := copyAs[[]*UsageOverviewItemResponse](rows)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*UsageOverviewItemResponse{}
	}
	return &UsageOverviewResponse{Items: items}, nil
}
