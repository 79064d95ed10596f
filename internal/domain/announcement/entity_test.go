//go:build unit

package announcement_test

import (
	"strings"
	"testing"
	"time"

	"coworking-booking/internal/domain/announcement"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnouncement(t *testing.T) {
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	authorID := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		a, err := announcement.NewAnnouncement(authorID, "  Elevator maintenance ", "Monday 8h to 12h", now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, a.ID())
		assert.Equal(t, authorID, a.AuthorID())
		assert.Equal(t, "Elevator maintenance", a.Title())
		assert.Equal(t, now, a.CreatedAt())
	})

	cases := []struct {
		name    string
		title   string
		content string
		errIs   error
	}{
		{"empty title", " ", "body", announcement.ErrEmptyTitle},
		{"title too long", strings.Repeat("t", announcement.MaxTitleLength+1), "body", announcement.ErrTitleTooLong},
		{"empty content", "title", "", announcement.ErrEmptyContent},
		{"content too long", "title", strings.Repeat("c", announcement.MaxContentLength+1), announcement.ErrContentTooLong},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := announcement.NewAnnouncement(authorID, tc.title, tc.content, now)
			require.ErrorIs(t, err, tc.errIs)
			assert.Nil(t, a)
		})
	}
}
