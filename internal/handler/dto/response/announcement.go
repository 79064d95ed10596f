package response

import (
	"time"

	"coworking-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AnnouncementResponse struct {
	ID         uuid.UUID  `json:"id"`
	AuthorID   *uuid.UUID `json:"author_id,omitempty"`
	AuthorName *string    `json:"author_name,omitempty"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	CreatedAt  time.Time  `json:"created_at"`
}

type AnnouncementListResponse struct {
	Items      []*AnnouncementResponse `json:"items"`
	NextCursor *string                 `json:"next_cursor,omitempty"`
}

func FromAnnouncementView(v *queries.AnnouncementView) (*AnnouncementResponse, error) {
	res, err := copyAs[AnnouncementResponse](v)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func FromAnnouncementPage(views []*queries.AnnouncementView, next *queries.Cursor) (*AnnouncementListResponse, error) {
	items, err := copyAs[[]*AnnouncementResponse](views)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*AnnouncementResponse{}
	}
	res := &AnnouncementListResponse{Items: items}
	if next != nil {
		res.NextCursor = &next.After
	}
	return res, nil
}
