package repository

import (
	"context"

	"coworking-booking/internal/domain/announcement"
	"coworking-booking/internal/infra"
	sqlc "coworking-booking/internal/infra/sqlc/generated"
	"coworking-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AnnouncementWriteQueries interface {
	CreateAnnouncement(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAnnouncementParams) (sqlc.Announcements, error)
	DeleteAnnouncement(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type AnnouncementRepository struct {
	queries AnnouncementWriteQueries
	db      sqlc.DBTX
}

func NewAnnouncementRepository(queries AnnouncementWriteQueries, db sqlc.DBTX) *AnnouncementRepository {
	return &AnnouncementRepository{queries: queries, db: db}
}

func (r *AnnouncementRepository) Create(ctx context.Context, tx sqlc.DBTX, a *announcement.Announcement) (uuid.UUID, error) {
	authorID := a.AuthorID()
	row, err := r.queries.CreateAnnouncement(ctx, tx, sqlc.CreateAnnouncementParams{
		ID:        a.ID(),
		AuthorID:  pgconv.UUIDPtrToPgtype(&authorID),
		Title:     a.Title(),
		Content:   a.Content(),
		CreatedAt: pgconv.TimeToPgtype(a.CreatedAt()),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create announcement", err)
	}
	return row.ID, nil
}

func (r *AnnouncementRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	affected, err := r.queries.DeleteAnnouncement(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete announcement", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("announcement not found", nil, infra.KindNotFound)
	}
	return nil
}
