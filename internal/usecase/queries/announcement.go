package queries

import (
	"context"
	"time"

	"coworking-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrAnnouncementNotFound = errs.NewNotFound("announcement not found")

type AnnouncementReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AnnouncementView, error)
	ListFirstPage(ctx context.Context, limit int32) ([]*AnnouncementView, error)
	ListKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*AnnouncementView, error)
}

type AnnouncementQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AnnouncementView, error)
	List(ctx context.Context, cursor *Cursor, limit int) ([]*AnnouncementView, *Cursor, error)
}

type announcementQueriesImpl struct {
	store AnnouncementReadStore
}

func NewAnnouncementQueries(store AnnouncementReadStore) AnnouncementQueries {
	return &announcementQueriesImpl{store: store}
}

func (q *announcementQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AnnouncementView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, ErrAnnouncementNotFound)
	}
	return view, nil
}

// List is newest first. One extra row is fetched to decide whether a next cursor exists.
func (q *announcementQueriesImpl) List(ctx context.Context, cursor *Cursor, limit int) ([]*AnnouncementView, *Cursor, error) {
	limit = ClampLimit(limit, DefaultListLimit)

	var rows []*AnnouncementView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.ListFirstPage(ctx, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.store.ListKeyset(ctx, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, translateNotFound(err, ErrAnnouncementNotFound)
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
