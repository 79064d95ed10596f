package queries

import (
	"context"
	"strings"

	"coworking-booking/internal/domain/profile"
	"coworking-booking/internal/domain/user"

	"github.com/google/uuid"
)

type ProfileReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProfileView, error)
	ListDirectory(ctx context.Context, search *string) ([]*ProfileView, error)
	ListAll(ctx context.Context) ([]*ProfileView, error)
}

type ProfileQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*ProfileView, error)
	Directory(ctx context.Context, search string) ([]*ProfileView, error)
	AdminList(ctx context.Context, actor user.Actor) ([]*ProfileView, error)
}

type profileQueriesImpl struct {
	store ProfileReadStore
}

func NewProfileQueries(store ProfileReadStore) ProfileQueries {
	return &profileQueriesImpl{store: store}
}

func (q *profileQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*ProfileView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, profile.ErrProfileNotFound)
	}
	return view, nil
}

// Directory only lists approved members, ordered by full name.
func (q *profileQueriesImpl) Directory(ctx context.Context, search string) ([]*ProfileView, error) {
	var term *string
	if s := strings.TrimSpace(search); s != "" {
		term = &s
	}
	views, err := q.store.ListDirectory(ctx, term)
	if err != nil {
		return nil, translateNotFound(err, profile.ErrProfileNotFound)
	}
	return views, nil
}

func (q *profileQueriesImpl) AdminList(ctx context.Context, actor user.Actor) ([]*ProfileView, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	views, err := q.store.ListAll(ctx)
	if err != nil {
		return nil, translateNotFound(err, profile.ErrProfileNotFound)
	}
	return views, nil
}
