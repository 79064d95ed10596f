package repository

import (
	"context"

	"coworking-booking/internal/domain/notification"
	"coworking-booking/internal/infra"
	sqlc "coworking-booking/internal/infra/sqlc/generated"
	"coworking-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type NotificationWriteQueries interface {
	CreateNotification(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationParams) (int64, error)
	MarkNotificationRead(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationReadParams) (int64, error)
	MarkAllNotificationsRead(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error)
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      sqlc.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db sqlc.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) Create(ctx context.Context, tx sqlc.DBTX, n *notification.Notification) (bool, error) {
	affected, err := r.queries.CreateNotification(ctx, tx, sqlc.CreateNotificationParams{
		ID:            n.ID(),
		UserID:        n.UserID(),
		Type:          n.Type().String(),
		Title:         n.Title(),
		Message:       n.Message(),
		ReferenceID:   pgconv.UUIDPtrToPgtype(n.ReferenceID()),
		SourceEventID: n.SourceEventID(),
		CreatedAt:     pgconv.TimeToPgtype(n.CreatedAt()),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to create notification", err)
	}
	return affected > 0, nil
}

// MarkRead does not filter on is_read, so repeating it succeeds.
func (r *NotificationRepository) MarkRead(ctx context.Context, tx sqlc.DBTX, id, userID uuid.UUID) error {
	affected, err := r.queries.MarkNotificationRead(ctx, tx, sqlc.MarkNotificationReadParams{ID: id, UserID: userID})
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification read", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("notification not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (int64, error) {
	affected, err := r.queries.MarkAllNotificationsRead(ctx, tx, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark notifications read", err)
	}
	return affected, nil
}
