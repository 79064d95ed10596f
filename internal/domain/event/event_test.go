//go:build unit

package event_test

import (
	"testing"
	"time"

	"coworking-booking/internal/domain/event"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent(t *testing.T) {
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	payload := event.BookingPayload{
		OwnerID: uuid.New(),
		Room:    "Sala 2",
		Title:   "Demo",
		Start:   now.Add(time.Hour),
		End:     now.Add(2 * time.Hour),
	}

	t.Run("payload survives encoding", func(t *testing.T) {
		e, err := event.New(event.TypeBookingDeleted, uuid.New(), uuid.New(), payload, now)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, e.ID)
		assert.Equal(t, now, e.OccurredAt)

		var decoded event.BookingPayload
		require.NoError(t, e.Decode(&decoded))
		if diff := cmp.Diff(payload, decoded); diff != "" {
			t.Errorf("payload mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unencodable payload", func(t *testing.T) {
		_, err := event.New(event.TypeBookingCreated, uuid.New(), uuid.New(), make(chan int), now)
		assert.Error(t, err)
	})

	t.Run("type filter", func(t *testing.T) {
		e := event.Event{Type: event.TypeAnnouncementCreated}

		assert.True(t, e.Matches(nil))
		assert.True(t, e.Matches([]event.Type{event.TypeBookingDeleted, event.TypeAnnouncementCreated}))
		assert.False(t, e.Matches([]event.Type{event.TypeBookingCreated}))
	})
}
