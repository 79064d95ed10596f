package repository

import (
	"context"

	"coworking-booking/internal/domain/profile"
	"coworking-booking/internal/infra"
	"coworking-booking/internal/infra/repository/converter"
	sqlc "coworking-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type ProfileWriteQueries interface {
	CreateProfile(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateProfileParams) (sqlc.Profiles, error)
	UpdateProfileDetails(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateProfileDetailsParams) (int64, error)
	UpdateProfileAdminFields(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateProfileAdminFieldsParams) (int64, error)
	DeleteProfile(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	UpdateLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
}

type ProfileRepository struct {
	queries ProfileWriteQueries
	db      sqlc.DBTX
}

func NewProfileRepository(queries ProfileWriteQueries, db sqlc.DBTX) *ProfileRepository {
	return &ProfileRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ProfileRepository) Create(ctx context.Context, tx sqlc.DBTX, p *profile.Profile, passwordHash string) (uuid.UUID, error) {
	row, err := r.queries.CreateProfile(ctx, tx, converter.ProfileToCreateParams(p, passwordHash))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create profile", err)
	}
	return row.ID, nil
}

func (r *ProfileRepository) UpdateDetails(ctx context.Context, tx sqlc.DBTX, p *profile.Profile) error {
	affected, err := r.queries.UpdateProfileDetails(ctx, tx, converter.ProfileToUpdateDetailsParams(p))
	if err != nil {
		return infra.WrapRepoErr("failed to update profile", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("profile not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ProfileRepository) UpdateAdminFields(ctx context.Context, tx sqlc.DBTX, p *profile.Profile) error {
	affected, err := r.queries.UpdateProfileAdminFields(ctx, tx, converter.ProfileToAdminFieldsParams(p))
	if err != nil {
		return infra.WrapRepoErr("failed to update profile admin fields", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("profile not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ProfileRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	affected, err := r.queries.DeleteProfile(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete profile", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("profile not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ProfileRepository) UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	if err := r.queries.UpdateLastLogin(ctx, tx, id); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
