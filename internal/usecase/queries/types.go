package queries

import (
	"time"

	"github.com/google/uuid"
)

// BookingView is a booking as shown in histories, schedules and admin lists.
// OwnerName and OwnerCompany are only filled by joined reads.
type BookingView struct {
	ID               uuid.UUID `json:"id"`
	OwnerID          uuid.UUID `json:"owner_id"`
	Room             string    `json:"room"`
	Title            string    `json:"title"`
	Requirements     *string   `json:"requirements,omitempty"`
	StartTime        time.Time `json:"start_time"`
	EndTime          time.Time `json:"end_time"`
	SubmitterUnit    *string   `json:"submitter_unit,omitempty"`
	SubmitterCompany *string   `json:"submitter_company,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	OwnerName        *string   `json:"owner_name,omitempty"`
	OwnerCompany     *string   `json:"owner_company,omitempty"`
}

// BookingSpan is the minimal projection used for time arithmetic.
type BookingSpan struct {
	ID        uuid.UUID
	StartTime time.Time
	EndTime   time.Time
}

type UsageView struct {
	UserID         uuid.UUID `json:"user_id"`
	MonthStart     time.Time `json:"month_start"`
	MonthEnd       time.Time `json:"month_end"`
	UsedHours      float64   `json:"used_hours"`
	QuotaHours     float64   `json:"quota_hours"`
	RemainingHours float64   `json:"remaining_hours"`
	Ratio          float64   `json:"ratio"`
	Source         string    `json:"source"`
}

type UsageOverviewRow struct {
	ProfileID      uuid.UUID `json:"profile_id"`
	FullName       string    `json:"full_name"`
	CompanyName    *string   `json:"company_name,omitempty"`
	Unit           *string   `json:"unit,omitempty"`
	UsedHours      float64   `json:"used_hours"`
	QuotaHours     float64   `json:"quota_hours"`
	RemainingHours float64   `json:"remaining_hours"`
	Ratio          float64   `json:"ratio"`
}

// ProfileUsageRecord is the raw per-profile aggregate before quota defaults apply.
type ProfileUsageRecord struct {
	ProfileID         uuid.UUID
	FullName          string
	CompanyName       *string
	Unit              *string
	MonthlyHoursQuota *float64
	UsedHours         float64
}

type ProfileView struct {
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

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	Role       string    `json:"role"`
	IsApproved bool      `json:"is_approved"`
}

type AnnouncementView struct {
	ID         uuid.UUID  `json:"id"`
	AuthorID   *uuid.UUID `json:"author_id,omitempty"`
	AuthorName *string    `json:"author_name,omitempty"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	CreatedAt  time.Time  `json:"created_at"`
}

type NotificationView struct {
	ID          uuid.UUID  `json:"id"`
	Type        string     `json:"type"`
	Title       string     `json:"title"`
	Message     string     `json:"message"`
	ReferenceID *uuid.UUID `json:"reference_id,omitempty"`
	IsRead      bool       `json:"is_read"`
	CreatedAt   time.Time  `json:"created_at"`
}

type NotificationList struct {
	Items       []*NotificationView `json:"items"`
	UnreadCount int64               `json:"unread_count"`
}
