package queries

import (
	"context"

	"coworking-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const NotificationListLimit = 30

var ErrNotificationNotFound = errs.NewNotFound("notification not found")

type NotificationReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit int32) ([]*NotificationView, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
}

type NotificationQueries interface {
	List(ctx context.Context, userID uuid.UUID) (*NotificationList, error)
}

type notificationQueriesImpl struct {
	store NotificationReadStore
}

func NewNotificationQueries(store NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{store: store}
}

func (q *notificationQueriesImpl) List(ctx context.Context, userID uuid.UUID) (*NotificationList, error) {
	items, err := q.store.ListByUser(ctx, userID, NotificationListLimit)
	if err != nil {
		return nil, translateNotFound(err, ErrNotificationNotFound)
	}
	unread, err := q.store.CountUnread(ctx, userID)
	if err != nil {
		return nil, translateNotFound(err, ErrNotificationNotFound)
	}
	return &NotificationList{Items: items, UnreadCount: unread}, nil
}
