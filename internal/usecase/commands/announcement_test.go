//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"coworking-booking/internal/domain/announcement"
	"coworking-booking/internal/domain/event"
	"coworking-booking/internal/domain/user"
	sqlc "coworking-booking/internal/infra/sqlc/generated"
	"coworking-booking/internal/usecase/commands"
	"coworking-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAnnouncementCommands(t *testing.T) {
	now := builder.At(2024, time.March, 1, 8, 0)
	admin := user.NewActor(uuid.New(), user.RoleAdmin)
	member := user.NewActor(uuid.New(), user.RoleMember)
	req := commands.CreateAnnouncementRequest{Title: "Elevator maintenance", Content: "Monday morning"}

	t.Run("create stores and emits", func(t *testing.T) {
		f := newTxFixture(t, now)
		uc := commands.NewAnnouncementUseCase(f.uow, f.clock)

		var storedID uuid.UUID
		f.announcements.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, a *announcement.Announcement) (uuid.UUID, error) {
				storedID = a.ID()
				assert.Equal(t, admin.ID, a.AuthorID())
				return a.ID(), nil
			})
		f.outbox.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, e event.Event) error {
				var payload event.AnnouncementPayload
				require.NoError(t, e.Decode(&payload))
				assert.Equal(t, event.TypeAnnouncementCreated, e.Type)
				assert.Equal(t, "Elevator maintenance", payload.Title)
				return nil
			})

		id, err := uc.Create(context.Background(), admin, req)
		require.NoError(t, err)
		assert.Equal(t, storedID, id)
	})

	t.Run("members cannot create or delete", func(t *testing.T) {
		f := newTxFixture(t, now)
		uc := commands.NewAnnouncementUseCase(f.uow, f.clock)

		_, err := uc.Create(context.Background(), member, req)
		require.ErrorIs(t, err, announcement.ErrAdminOnlyAction)
		require.ErrorIs(t, uc.Delete(context.Background(), member, uuid.New()), announcement.ErrAdminOnlyAction)
	})

	t.Run("blank title", func(t *testing.T) {
		f := newTxFixture(t, now)
		uc := commands.NewAnnouncementUseCase(f.uow, f.clock)

		_, err := uc.Create(context.Background(), admin, commands.CreateAnnouncementRequest{Title: " ", Content: "x"})
		require.ErrorIs(t, err, announcement.ErrEmptyTitle)
	})

	t.Run("delete missing", func(t *testing.T) {
		f := newTxFixture(t, now)
		uc := commands.NewAnnouncementUseCase(f.uow, f.clock)

		f.announcements.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).Return(notFound())

		require.ErrorIs(t, uc.Delete(context.Background(), admin, uuid.New()), commands.ErrAnnouncementNotFound)
	})
}
