package readstore

import (
	"context"

	"coworking-booking/internal/domain/user"
	"coworking-booking/internal/infra"
	sqlc "coworking-booking/internal/infra/sqlc/generated"
	"coworking-booking/internal/pkg/pgconv"
	"coworking-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ProfileViewQueries interface {
	GetProfileByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Profiles, error)
	GetProfileByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Profiles, error)
	ListDirectoryProfiles(ctx context.Context, db sqlc.DBTX, search pgtype.Text) ([]sqlc.Profiles, error)
	ListAllProfiles(ctx context.Context, db sqlc.DBTX) ([]sqlc.Profiles, error)
	ListApprovedProfileIDs(ctx context.Context, db sqlc.DBTX) ([]uuid.UUID, error)
}

type ProfileReadStore struct {
	queries ProfileViewQueries
	db      sqlc.DBTX
}

func NewProfileReadStore(queries ProfileViewQueries, db sqlc.DBTX) *ProfileReadStore {
	return &ProfileReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ProfileReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProfileView, error) {
	row, err := r.findRow(ctx, id)
	if err != nil {
		return nil, err
	}
	return profileViewFromRow(row)
}

func (r *ProfileReadStore) FindAuthorizedByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.findRow(ctx, id)
	if err != nil {
		return nil, err
	}
	return &queries.AuthorizedUserView{
		ID:         row.ID,
		Email:      row.Email,
		FullName:   row.FullName,
		Role:       user.RoleFor(row.IsAdmin).String(),
		IsApproved: row.IsApproved,
	}, nil
}

// FindByEmail also returns the password hash for credential checks.
func (r *ProfileReadStore) FindByEmail(ctx context.Context, email string) (*queries.ProfileView, string, error) {
	row, err := r.queries.GetProfileByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("profile not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find profile by email", err)
	}
	view, err := profileViewFromRow(row)
	if err != nil {
		return nil, "", err
	}
	return view, row.PasswordHash, nil
}

func (r *ProfileReadStore) ListDirectory(ctx context.Context, search *string) ([]*queries.ProfileView, error) {
	rows, err := r.queries.ListDirectoryProfiles(ctx, r.db, pgconv.StringPtrToPgtype(search))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list directory", err)
	}
	return profileViewsFromRows(rows)
}

func (r *ProfileReadStore) ListAll(ctx context.Context) ([]*queries.ProfileView, error) {
	rows, err := r.queries.ListAllProfiles(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list profiles", err)
	}
	return profileViewsFromRows(rows)
}

func (r *ProfileReadStore) ApprovedIDs(ctx context.Context) ([]uuid.UUID, error) {
	ids, err := r.queries.ListApprovedProfileIDs(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list approved profiles", err)
	}
	return ids, nil
}

func (r *ProfileReadStore) findRow(ctx context.Context, id uuid.UUID) (sqlc.Profiles, error) {
	row, err := r.queries.GetProfileByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return sqlc.Profiles{}, infra.WrapRepoErr("profile not found", err, infra.KindNotFound)
		}
		return sqlc.Profiles{}, infra.WrapRepoErr("failed to get profile by id", err)
	}
	return row, nil
}

func profileViewsFromRows(rows []sqlc.Profiles) ([]*queries.ProfileView, error) {
	views := make([]*queries.ProfileView, 0, len(rows))
	for _, row := range rows {
		v, err := profileViewFromRow(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func profileViewFromRow(row sqlc.Profiles) (*queries.ProfileView, error) {
	quota, err := pgconv.Float64PtrFromPgtype(row.MonthlyHoursQuota)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid monthly hours quota", err)
	}
	return &queries.ProfileView{
		ID:                row.ID,
		Email:             row.Email,
		FullName:          row.FullName,
		CompanyName:       pgconv.StringPtrFromPgtype(row.CompanyName),
		Unit:              pgconv.StringPtrFromPgtype(row.AssignedRoom),
		Bio:               pgconv.StringPtrFromPgtype(row.Bio),
		PhotoURL:          pgconv.StringPtrFromPgtype(row.PhotoUrl),
		Phone:             pgconv.StringPtrFromPgtype(row.Phone),
		MonthlyHoursQuota: quota,
		IsAdmin:           row.IsAdmin,
		IsApproved:        row.IsApproved,
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:         pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
