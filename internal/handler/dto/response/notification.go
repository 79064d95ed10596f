package response

import (
	"time"

	"coworking-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	ID          uuid.UUID  `json:"id"`
	Type        string     `json:"type"`
	Title       string     `json:"title"`
	Message     string     `json:"message"`
	ReferenceID *uuid.UUID `json:"reference_id,omitempty"`
	IsRead      bool       `json:"is_read"`
	CreatedAt   time.Time  `json:"created_at"`
}

type NotificationListResponse struct {
	Items       []*NotificationResponse `json:"items"`
	UnreadCount int64                   `json:"unread_count"`
}

type MarkAllReadResponse struct {
	Marked int64 `json:"marked"`
}

func FromNotificationList(l *queries.NotificationList) (*NotificationListResponse, error) {
	res, err := copyAs[NotificationListResponse](l)
	if err != nil {
		return nil, err
	}
	if res.Items == nil {
		res.Items = []*NotificationResponse{}
	}
	return &res, nil
}
