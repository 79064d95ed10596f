package converter

import (
	"coworking-booking/internal/domain/profile"
	sqlc "coworking-booking/internal/infra/sqlc/generated"
	"coworking-booking/internal/pkg/pgconv"
)

func ProfileToCreateParams(p *profile.Profile, passwordHash string) sqlc.CreateProfileParams {
	return sqlc.CreateProfileParams{
		ID:                p.ID(),
		Email:             p.Email().Value(),
		PasswordHash:      passwordHash,
		FullName:          p.FullName(),
		CompanyName:       pgconv.StringPtrToPgtype(p.CompanyName()),
		AssignedRoom:      pgconv.StringPtrToPgtype(p.Unit()),
		Bio:               pgconv.StringPtrToPgtype(p.Bio()),
		PhotoUrl:          pgconv.StringPtrToPgtype(p.PhotoURL()),
		Phone:             pgconv.StringPtrToPgtype(p.Phone()),
		MonthlyHoursQuota: pgconv.Float64PtrToPgtype(p.MonthlyHoursQuota()),
		IsAdmin:           p.IsAdmin(),
		IsApproved:        p.IsApproved(),
		CreatedAt:         pgconv.TimeToPgtype(p.CreatedAt()),
		UpdatedAt:         pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func ProfileToUpdateDetailsParams(p *profile.Profile) sqlc.UpdateProfileDetailsParams {
	return sqlc.UpdateProfileDetailsParams{
		ID:           p.ID(),
		FullName:     p.FullName(),
		CompanyName:  pgconv.StringPtrToPgtype(p.CompanyName()),
		AssignedRoom: pgconv.StringPtrToPgtype(p.Unit()),
		Bio:          pgconv.StringPtrToPgtype(p.Bio()),
		PhotoUrl:     pgconv.StringPtrToPgtype(p.PhotoURL()),
		Phone:        pgconv.StringPtrToPgtype(p.Phone()),
		UpdatedAt:    pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func ProfileToAdminFieldsParams(p *profile.Profile) sqlc.UpdateProfileAdminFieldsParams {
	return sqlc.UpdateProfileAdminFieldsParams{
		ID:                p.ID(),
		IsApproved:        p.IsApproved(),
		IsAdmin:           p.IsAdmin(),
		MonthlyHoursQuota: pgconv.Float64PtrToPgtype(p.MonthlyHoursQuota()),
		UpdatedAt:         pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}
