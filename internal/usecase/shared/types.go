package shared

import (
	"time"

	"coworking-booking/internal/domain/booking"
	"coworking-booking/internal/domain/profile"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type ProfileSnapshot struct {
	ID                uuid.UUID
	Email             string
	PasswordHash      string
	FullName          string
	CompanyName       *string
	Unit              *string
	Bio               *string
	PhotoURL          *string
	Phone             *string
	MonthlyHoursQuota *float64
	IsAdmin           bool
	IsApproved        bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (s *ProfileSnapshot) ToDomain() *profile.Profile {
	return profile.ReconstructProfile(
		s.ID, s.Email, s.FullName,
		s.CompanyName, s.Unit, s.Bio, s.PhotoURL, s.Phone,
		s.MonthlyHoursQuota, s.IsAdmin, s.IsApproved,
		s.CreatedAt, s.UpdatedAt,
	)
}

type BookingSnapshot struct {
	ID               uuid.UUID
	OwnerID          uuid.UUID
	Room             string
	Title            string
	Requirements     *string
	StartTime        time.Time
	EndTime          time.Time
	SubmitterUnit    *string
	SubmitterCompany *string
	CreatedAt        time.Time
}

func (s *BookingSnapshot) ToDomain() *booking.Booking {
	return booking.ReconstructBooking(
		s.ID, s.OwnerID, s.Room, s.StartTime, s.EndTime,
		s.Title, s.Requirements, s.SubmitterUnit, s.SubmitterCompany, s.CreatedAt,
	)
}

type AnnouncementSnapshot struct {
	ID       uuid.UUID
	AuthorID *uuid.UUID
	Title    string
}
