package response

import (
	"time"

	"coworking-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProfileResponse struct {
	ID                uuid.UUID `json:"id"`
	Email             string    `json:"email"`
	FullName          string    `json:"full_name"`
	CompanyName       *string   `json:"company_name,omitempty"`
	Unit              *string   `json:"unit,omitempty"`
	Bio               *string   `json:"bio,omitempty"`
	PhotoURL          *string   `json:"photo_url,omitempty"`
	Phone             *string   `json:"phone,omitempty"`
	MonthlyHoursQuota *float64  `json:"monthly_hours_quota,omitempty"`
	IsAdmin           bool      `json:"is_admin"`
	IsApproved        bool      `json:"is_approved"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// DirectoryEntryResponse is what members see of each other.
type DirectoryEntryResponse struct {
	ID          uuid.UUID `json:"id"`
	FullName    string    `json:"full_name"`
	CompanyName *string   `json:"company_name,omitempty"`
	Unit        *string   `json:"unit,omitempty"`
	Bio         *string   `json:"bio,omitempty"`
	PhotoURL    *string   `json:"photo_url,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	Email       string    `json:"email"`
}

type ProfileListResponse struct {
	Items []*ProfileResponse `json:"items"`
}

type DirectoryResponse struct {
	Items []*DirectoryEntryResponse `json:"items"`
}

func FromProfileView(v *queries.ProfileView) (*ProfileResponse, error) {
	res, err := copyAs[ProfileResponse](v)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func FromProfileViews(views []*queries.ProfileView) (*ProfileListResponse, error) {
	items, err := copyAs[[]*ProfileResponse](views)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*ProfileResponse{}
	}
	return &ProfileListResponse{Items: items}, nil
}

func FromDirectory(views []*queries.ProfileView) (*DirectoryResponse, error) {
	items, err := copyAs[[]*DirectoryEntryResponse](views)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*DirectoryEntryResponse{}
	}
	return &DirectoryResponse{Items: items}, nil
}
