//go:build unit || e2e

package builder

import (
	"time"

	"coworking-booking/internal/domain/profile"
	"coworking-booking/internal/domain/user"
	sqlc "coworking-booking/internal/infra/sqlc/generated"
	"coworking-booking/internal/usecase/queries"
	"coworking-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ProfileBuilder struct {
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

func NewProfileBuilder() *ProfileBuilder {
	created := At(2024, time.January, 10, 8, 0)
	company := "Acme Ltda"
	unit := "07"
	return &ProfileBuilder{
		ID:           uuid.New(),
		Email:        "member@example.com",
		PasswordHash: "hashed_password",
		FullName:     "Maria Souza",
		CompanyName:  &company,
		Unit:         &unit,
		IsApproved:   true,
		CreatedAt:    created,
		UpdatedAt:    created,
	}
}

func (p *ProfileBuilder) With(mutate func(*ProfileBuilder)) *ProfileBuilder {
	mutate(p)
	return p
}

// Build methods
func (p *ProfileBuilder) BuildDomain() *profile.Profile {
	return p.BuildSnapshot().ToDomain()
}

func (p *ProfileBuilder) BuildActor() user.Actor {
	return user.NewActor(p.ID, user.RoleFor(p.IsAdmin))
}

func (p *ProfileBuilder) BuildSnapshot() *shared.ProfileSnapshot {
	return &shared.ProfileSnapshot{
		ID:                p.ID,
		Email:             p.Email,
		PasswordHash:      p.PasswordHash,
		FullName:          p.FullName,
		CompanyName:       p.CompanyName,
		Unit:              p.Unit,
		Bio:               p.Bio,
		PhotoURL:          p.PhotoURL,
		Phone:             p.Phone,
		MonthlyHoursQuota: p.MonthlyHoursQuota,
		IsAdmin:           p.IsAdmin,
		IsApproved:        p.IsApproved,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func (p *ProfileBuilder) BuildView() *queries.ProfileView {
	return &queries.ProfileView{
		ID:                p.ID,
		Email:             p.Email,
		FullName:          p.FullName,
		CompanyName:       p.CompanyName,
		Unit:              p.Unit,
		Bio:               p.Bio,
		PhotoURL:          p.PhotoURL,
		Phone:             p.Phone,
		MonthlyHoursQuota: p.MonthlyHoursQuota,
		IsAdmin:           p.IsAdmin,
		IsApproved:        p.IsApproved,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func (p *ProfileBuilder) BuildAuthorizedView() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:         p.ID,
		Email:      p.Email,
		FullName:   p.FullName,
		Role:       user.RoleFor(p.IsAdmin).String(),
		IsApproved: p.IsApproved,
	}
}

func (p *ProfileBuilder) BuildInfra() sqlc.Profiles {
	quota := pgtype.Float8{}
	if p.MonthlyHoursQuota != nil {
		quota = pgtype.Float8{Float64: *p.MonthlyHoursQuota, Valid: true}
	}
	return sqlc.Profiles{
		ID:                p.ID,
		Email:             p.Email,
		PasswordHash:      p.PasswordHash,
		FullName:          p.FullName,
		CompanyName:       text(p.CompanyName),
		AssignedRoom:      text(p.Unit),
		Bio:               text(p.Bio),
		PhotoUrl:          text(p.PhotoURL),
		Phone:             text(p.Phone),
		MonthlyHoursQuota: quota,
		IsAdmin:           p.IsAdmin,
		IsApproved:        p.IsApproved,
		CreatedAt:         pgtype.Timestamptz{Time: p.CreatedAt, Valid: true},
		UpdatedAt:         pgtype.Timestamptz{Time: p.UpdatedAt, Valid: true},
	}
}

// Fluent builder methods
func (p *ProfileBuilder) WithID(id uuid.UUID) *ProfileBuilder {
	p.ID = id
	return p
}

func (p *ProfileBuilder) WithEmail(email string) *ProfileBuilder {
	p.Email = email
	return p
}

func (p *ProfileBuilder) WithPasswordHash(hash string) *ProfileBuilder {
	p.PasswordHash = hash
	return p
}

func (p *ProfileBuilder) WithQuota(hours float64) *ProfileBuilder {
	p.MonthlyHoursQuota = &hours
	return p
}

func (p *ProfileBuilder) AsAdmin() *ProfileBuilder {
	p.IsAdmin = true
	return p
}

func (p *ProfileBuilder) Pending() *ProfileBuilder {
	p.IsApproved = false
	return p
}

func (p *ProfileBuilder) WithoutAffiliation() *ProfileBuilder {
	p.CompanyName = nil
	p.Unit = nil
	return p
}
