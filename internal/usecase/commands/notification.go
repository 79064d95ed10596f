package commands

import (
	"context"
	"fmt"
	"log/slog"

	"coworking-booking/internal/domain/event"
	"coworking-booking/internal/domain/notification"
	"coworking-booking/internal/pkg/clock"
	"coworking-booking/internal/pkg/errs"
	"coworking-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrNotificationNotFound = errs.NewNotFound("notification not found")

type NotificationCommands interface {
	// MarkRead succeeds again on an already read notification.
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	// ApplyEvent turns one change event into inbox entries and reports how many
	// were new. Applying the same event twice creates nothing the second time.
	ApplyEvent(ctx context.Context, e event.Event) (int, error)
}

// NotifiedEvents are the event types ApplyEvent acts on.
var NotifiedEvents = []event.Type{event.TypeAnnouncementCreated, event.TypeBookingDeleted}

type notificationUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewNotificationUseCase(uow shared.UnitOfWork, clk clock.Clock) NotificationCommands {
	return &notificationUseCaseImpl{uow: uow, clock: clk}
}

func (uc *notificationUseCaseImpl) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return storageErr(tx.Notifications().MarkRead(ctx, tx.DB(), notificationID, userID), ErrNotificationNotFound)
	})
}

func (uc *notificationUseCaseImpl) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	var marked int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, derr := tx.Notifications().MarkAllRead(ctx, tx.DB(), userID)
		marked = n
		return storageErr(derr, nil)
	})
	return marked, err
}

func (uc *notificationUseCaseImpl) ApplyEvent(ctx context.Context, e event.Event) (int, error) {
	if !e.Matches(NotifiedEvents) {
		return 0, nil
	}

	var created int
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created = 0
		pending, derr := uc.notificationsFor(ctx, tx, e)
		if derr != nil {
			return derr
		}
		for _, n := range pending {
			isNew, cerr := tx.Notifications().Create(ctx, tx.DB(), n)
			if cerr != nil {
				return storageErr(cerr, nil)
			}
			if isNew {
				created++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	slog.Debug("change event applied", "event_id", e.ID, "type", e.Type.String(), "created", created)
	return created, nil
}

func (uc *notificationUseCaseImpl) notificationsFor(ctx context.Context, tx shared.Tx, e event.Event) ([]*notification.Notification, error) {
	now := uc.clock.Now()
	ref := e.EntityID

	switch e.Type {
	case event.TypeAnnouncementCreated:
		var payload event.AnnouncementPayload
		if err := e.Decode(&payload); err != nil {
			return nil, errs.Wrap(err, "malformed announcement payload")
		}
		recipients, err := tx.Reads().ApprovedProfileIDs(ctx)
		if err != nil {
			return nil, storageErr(err, nil)
		}
		out := make([]*notification.Notification, 0, len(recipients))
		for _, id := range recipients {
			if id == e.ActorID {
				continue
			}
			out = append(out, notification.New(id, notification.TypeNewAnnouncement,
				"New announcement", payload.Title, &ref, e.ID, now))
		}
		return out, nil

	case event.TypeBookingDeleted:
		var payload event.BookingPayload
		if err := e.Decode(&payload); err != nil {
			return nil, errs.Wrap(err, "malformed booking payload")
		}
		// owners cancelling their own booking need no notice
		if payload.OwnerID == e.ActorID {
			return nil, nil
		}
		msg := fmt.Sprintf("Your booking %q in %s on %s was cancelled by an administrator.",
			payload.Title, payload.Room, payload.Start.Format("2006-01-02 15:04"))
		return []*notification.Notification{
			notification.New(payload.OwnerID, notification.TypeBookingCancelled,
				"Booking cancelled", msg, &ref, e.ID, now),
		}, nil
	}
	return nil, nil
}
