package readstore

import (
	"context"
	"time"

	"coworking-booking/internal/infra"
	sqlc "coworking-booking/internal/infra/sqlc/generated"
	"coworking-booking/internal/pkg/pgconv"
	"coworking-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AnnouncementViewQueries interface {
	GetAnnouncementByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetAnnouncementByIDRow, error)
	ListAnnouncementsFirstPage(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.ListAnnouncementsFirstPageRow, error)
	ListAnnouncementsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAnnouncementsKeysetParams) ([]sqlc.ListAnnouncementsKeysetRow, error)
}

type AnnouncementReadStore struct {
	queries AnnouncementViewQueries
	db      sqlc.DBTX
}

func NewAnnouncementReadStore(queries AnnouncementViewQueries, db sqlc.DBTX) *AnnouncementReadStore {
	return &AnnouncementReadStore{queries: queries, db: db}
}

func (r *AnnouncementReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AnnouncementView, error) {
	row, err := r.queries.GetAnnouncementByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("announcement not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get announcement by id", err)
	}
	return announcementView(sqlc.ListAnnouncementsFirstPageRow(row)), nil
}

func (r *AnnouncementReadStore) ListFirstPage(ctx context.Context, limit int32) ([]*queries.AnnouncementView, error) {
	rows, err := r.queries.ListAnnouncementsFirstPage(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list announcements first page", err)
	}
	views := make([]*queries.AnnouncementView, 0, len(rows))
	for _, row := range rows {
		views = append(views, announcementView(row))
	}
	return views, nil
}

func (r *AnnouncementReadStore) ListKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.AnnouncementView, error) {
	rows, err := r.queries.ListAnnouncementsKeyset(ctx, r.db, sqlc.ListAnnouncementsKeysetParams{
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Lim:       limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list announcements keyset", err)
	}
	views := make([]*queries.AnnouncementView, 0, len(rows))
	for _, row := range rows {
		views = append(views, announcementView(sqlc.ListAnnouncementsFirstPageRow(row)))
	}
	return views, nil
}

func announcementView(row sqlc.ListAnnouncementsFirstPageRow) *queries.AnnouncementView {
	return &queries.AnnouncementView{
		ID:         row.ID,
		AuthorID:   pgconv.UUIDPtrFromPgtype(row.AuthorID),
		AuthorName: pgconv.StringPtrFromPgtype(row.AuthorName),
		Title:      row.Title,
		Content:    row.Content,
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
