package commands

import (
	"context"

	"coworking-booking/internal/domain/announcement"
	"coworking-booking/internal/domain/event"
	"coworking-booking/internal/domain/user"
	"coworking-booking/internal/pkg/clock"
	"coworking-booking/internal/pkg/errs"
	"coworking-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrAnnouncementNotFound = errs.NewNotFound("announcement not found")

type CreateAnnouncementRequest struct {
	Title   string
	Content string
}

type AnnouncementCommands interface {
	Create(ctx context.Context, actor user.Actor, req CreateAnnouncementRequest) (uuid.UUID, error)
	Delete(ctx context.Context, actor user.Actor, id uuid.UUID) error
}

type announcementUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAnnouncementUseCase(uow shared.UnitOfWork, clk clock.Clock) AnnouncementCommands {
	return &announcementUseCaseImpl{uow: uow, clock: clk}
}

func (uc *announcementUseCaseImpl) Create(ctx context.Context, actor user.Actor, req CreateAnnouncementRequest) (uuid.UUID, error) {
	if !actor.IsAdmin() {
		return uuid.Nil, announcement.ErrAdminOnlyAction
	}
	now := uc.clock.Now()

	a, err := announcement.NewAnnouncement(actor.ID, req.Title, req.Content, now)
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Announcements().Create(ctx, tx.DB(), a); derr != nil {
			return storageErr(derr, nil)
		}
		e, derr := event.New(event.TypeAnnouncementCreated, a.ID(), actor.ID, event.AnnouncementPayload{Title: a.Title()}, now)
		if derr != nil {
			return errs.Wrap(derr, "failed to encode announcement event")
		}
		return storageErr(tx.Outbox().Append(ctx, tx.DB(), e), nil)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return a.ID(), nil
}

func (uc *announcementUseCaseImpl) Delete(ctx context.Context, actor user.Actor, id uuid.UUID) error {
	if !actor.IsAdmin() {
		return announcement.ErrAdminOnlyAction
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return storageErr(tx.Announcements().Delete(ctx, tx.DB(), id), ErrAnnouncementNotFound)
	})
}
