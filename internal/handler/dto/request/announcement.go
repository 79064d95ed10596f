package request

import (
	"coworking-booking/internal/usecase/commands"
	"coworking-booking/internal/usecase/queries"
)

type CreateAnnouncementRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Content string `json:"content" binding:"required,max=5000"`
}

func (r *CreateAnnouncementRequest) ToCommand() commands.CreateAnnouncementRequest {
	return commands.CreateAnnouncementRequest{Title: r.Title, Content: r.Content}
}

type ListAnnouncementsQuery struct {
	After string `form:"after"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

func (q *ListAnnouncementsQuery) Cursor() *queries.Cursor {
	if q.After == "" {
		return nil
	}
	return &queries.Cursor{After: q.After}
}
