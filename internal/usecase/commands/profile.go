package commands

import (
	"context"
	"log/slog"

	"coworking-booking/internal/domain/event"
	"coworking-booking/internal/domain/profile"
	"coworking-booking/internal/domain/user"
	"coworking-booking/internal/pkg/clock"
	"coworking-booking/internal/pkg/errs"
	"coworking-booking/internal/pkg/patch"
	"coworking-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// UpdateProfileRequest is a partial update. Nil fields keep their value and an
// empty string clears an optional field.
type UpdateProfileRequest struct {
	FullName    *string
	CompanyName *string
	Unit        *string
	Bio         *string
	PhotoURL    *string
	Phone       *string
}

type AdminUpdateProfileRequest struct {
	IsApproved        *bool
	IsAdmin           *bool
	MonthlyHoursQuota *float64
	// ResetQuota drops the explicit quota so the default applies again.
	ResetQuota bool
}

type ProfileCommands interface {
	UpdateOwn(ctx context.Context, actor user.Actor, req UpdateProfileRequest) error
	AdminUpdate(ctx context.Context, actor user.Actor, profileID uuid.UUID, req AdminUpdateProfileRequest) error
	Delete(ctx context.Context, actor user.Actor, profileID uuid.UUID) error
}

type profileUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewProfileUseCase(uow shared.UnitOfWork, clk clock.Clock) ProfileCommands {
	return &profileUseCaseImpl{uow: uow, clock: clk}
}

func (uc *profileUseCaseImpl) UpdateOwn(ctx context.Context, actor user.Actor, req UpdateProfileRequest) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ProfileByID(ctx, actor.ID)
		if derr != nil {
			return storageErr(derr, profile.ErrProfileNotFound)
		}
		p := snap.ToDomain()

		details := profile.Details{
			FullName:    patch.Coalesce(req.FullName, p.FullName()),
			CompanyName: patch.Optional(req.CompanyName, p.CompanyName()),
			Unit:        patch.Optional(req.Unit, p.Unit()),
			Bio:         patch.Optional(req.Bio, p.Bio()),
			PhotoURL:    patch.Optional(req.PhotoURL, p.PhotoURL()),
			Phone:       patch.Optional(req.Phone, p.Phone()),
		}
		if derr = p.UpdateDetails(details, uc.clock.Now()); derr != nil {
			return derr
		}
		return storageErr(tx.Profiles().UpdateDetails(ctx, tx.DB(), p), profile.ErrProfileNotFound)
	})
}

// AdminUpdate appends profile.approved only on the transition from pending to approved.
func (uc *profileUseCaseImpl) AdminUpdate(ctx context.Context, actor user.Actor, profileID uuid.UUID, req AdminUpdateProfileRequest) error {
	if err := actor.RequireAdmin(); err != nil {
		return err
	}
	now := uc.clock.Now()

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ProfileByID(ctx, profileID)
		if derr != nil {
			return storageErr(derr, profile.ErrProfileNotFound)
		}
		p := snap.ToDomain()
		wasApproved := p.IsApproved()

		if req.IsApproved != nil {
			p.SetApproved(*req.IsApproved, now)
		}
		if req.IsAdmin != nil {
			p.SetAdmin(*req.IsAdmin, now)
		}
		switch {
		case req.ResetQuota:
			derr = p.SetQuota(nil, now)
		case req.MonthlyHoursQuota != nil:
			derr = p.SetQuota(req.MonthlyHoursQuota, now)
		}
		if derr != nil {
			return derr
		}

		if derr = tx.Profiles().UpdateAdminFields(ctx, tx.DB(), p); derr != nil {
			return storageErr(derr, profile.ErrProfileNotFound)
		}

		if wasApproved || !p.IsApproved() {
			return nil
		}
		e, derr := event.New(event.TypeProfileApproved, p.ID(), actor.ID, event.ProfilePayload{Email: p.Email().Value()}, now)
		if derr != nil {
			return errs.Wrap(derr, "failed to encode profile event")
		}
		return storageErr(tx.Outbox().Append(ctx, tx.DB(), e), nil)
	})
}

// Delete removes the profile together with its bookings and notifications.
func (uc *profileUseCaseImpl) Delete(ctx context.Context, actor user.Actor, profileID uuid.UUID) error {
	if err := actor.RequireAdmin(); err != nil {
		return err
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return storageErr(tx.Profiles().Delete(ctx, tx.DB(), profileID), profile.ErrProfileNotFound)
	})
	if err != nil {
		return err
	}

	slog.Info("profile deleted", "profile_id", profileID, "actor_id", actor.ID)
	return nil
}
