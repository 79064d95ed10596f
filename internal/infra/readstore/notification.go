package readstore

import (
	"context"

	"coworking-booking/internal/infra"
	sqlc "coworking-booking/internal/infra/sqlc/generated"
	"coworking-booking/internal/pkg/pgconv"
	"coworking-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationViewQueries interface {
	ListNotificationsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListNotificationsByUserParams) ([]sqlc.UserNotifications, error)
	CountUnreadNotifications(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error)
}

type NotificationReadStore struct {
	queries NotificationViewQueries
	db      sqlc.DBTX
}

func NewNotificationReadStore(queries NotificationViewQueries, db sqlc.DBTX) *NotificationReadStore {
	return &NotificationReadStore{queries: queries, db: db}
}

func (r *NotificationReadStore) ListByUser(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.NotificationView, error) {
	rows, err := r.queries.ListNotificationsByUser(ctx, r.db, sqlc.ListNotificationsByUserParams{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}

	views := make([]*queries.NotificationView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.NotificationView{
			ID:          row.ID,
			Type:        row.Type,
			Title:       row.Title,
			Message:     row.Message,
			ReferenceID: pgconv.UUIDPtrFromPgtype(row.ReferenceID),
			IsRead:      row.IsRead,
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return views, nil
}

func (r *NotificationReadStore) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := r.queries.CountUnreadNotifications(ctx, r.db, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count unread notifications", err)
	}
	return count, nil
}
