package commands

import (
	"context"
	"log/slog"
	"time"

	"coworking-booking/internal/domain/booking"
	"coworking-booking/internal/domain/event"
	"coworking-booking/internal/domain/profile"
	"coworking-booking/internal/domain/user"
	"coworking-booking/internal/pkg/clock"
	"coworking-booking/internal/pkg/errs"
	"coworking-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.NewNotFound("booking not found")

type AdmitBookingRequest struct {
	Actor        user.Actor
	Room         string
	Start        time.Time
	End          time.Time
	Title        string
	Requirements *string
	// Submitter snapshot. Nil falls back to the owner's profile.
	SubmitterUnit    *string
	SubmitterCompany *string
}

type AdmitBookingResult struct {
	BookingID uuid.UUID
}

type BookingCommands interface {
	Admit(ctx context.Context, req AdmitBookingRequest) (*AdmitBookingResult, error)
	Cancel(ctx context.Context, bookingID uuid.UUID, actor user.Actor) error
}

type bookingUseCaseImpl struct {
	uow   shared.UnitOfWork
	rules booking.Rules
	clock clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, rules booking.Rules, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, rules: rules, clock: clk}
}

// Admit validates the request, then checks quota and gap rule and inserts the
// booking in one transaction. Advisory locks on the owner's month and on the
// room are taken before anything is read, so concurrent admissions that could
// invalidate each other run one after the other.
func (uc *bookingUseCaseImpl) Admit(ctx context.Context, req AdmitBookingRequest) (*AdmitBookingResult, error) {
	now := uc.clock.Now()

	draft, err := booking.NewBooking(booking.NewBookingParams{
		OwnerID:      req.Actor.ID,
		Room:         req.Room,
		Start:        req.Start,
		End:          req.End,
		Title:        req.Title,
		Requirements: req.Requirements,
	}, now)
	if err != nil {
		return nil, err
	}
	slot := draft.Slot()
	month := uc.rules.MonthOf(now)

	var admitted *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		owner, derr := tx.Reads().ProfileByID(ctx, req.Actor.ID)
		if derr != nil {
			return storageErr(derr, profile.ErrProfileNotFound)
		}
		if !owner.IsApproved && !req.Actor.IsAdmin() {
			return profile.ErrProfileNotApproved
		}

		if derr = tx.Locks().Acquire(ctx, tx.DB(), quotaLockKey(req.Actor.ID, month)); derr != nil {
			return storageErr(derr, nil)
		}
		if derr = tx.Locks().Acquire(ctx, tx.DB(), roomLockKey(draft.Room())); derr != nil {
			return storageErr(derr, nil)
		}

		owned, derr := tx.Reads().OwnerBookingRanges(ctx, req.Actor.ID, month)
		if derr != nil {
			return storageErr(derr, nil)
		}
		used := booking.SumDurations(owned)
		if derr = uc.rules.QuotaFor(owner.MonthlyHoursQuota).Admit(used, slot.Duration()); derr != nil {
			return derr
		}

		neighbours, derr := tx.Reads().RoomBookingRanges(ctx, draft.Room().String(), uc.rules.Gap.SearchWindow(slot))
		if derr != nil {
			return storageErr(derr, nil)
		}
		if uc.rules.Gap.FirstConflict(slot, neighbours) >= 0 {
			return booking.ErrRoomConflict
		}

		unit, company := req.SubmitterUnit, req.SubmitterCompany
		if unit == nil {
			unit = owner.Unit
		}
		if company == nil {
			company = owner.CompanyName
		}
		admitted, derr = booking.NewBooking(booking.NewBookingParams{
			OwnerID:      req.Actor.ID,
			Room:         draft.Room().String(),
			Start:        slot.Start(),
			End:          slot.End(),
			Title:        draft.Title().String(),
			Requirements: draft.Requirements().Ptr(),
			Unit:         unit,
			Company:      company,
		}, now)
		if derr != nil {
			return derr
		}

		if _, derr = tx.Bookings().Create(ctx, tx.DB(), admitted); derr != nil {
			return referenceErr(derr, profile.ErrProfileNotFound)
		}
		return appendBookingEvent(ctx, tx, event.TypeBookingCreated, admitted, req.Actor.ID, now)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("booking admitted",
		"booking_id", admitted.ID(),
		"owner_id", admitted.OwnerID(),
		"room", admitted.Room().String(),
		"hours", slot.Hours())
	return &AdmitBookingResult{BookingID: admitted.ID()}, nil
}

func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, bookingID uuid.UUID, actor user.Actor) error {
	now := uc.clock.Now()

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().BookingByID(ctx, bookingID)
		if derr != nil {
			return storageErr(derr, ErrBookingNotFound)
		}
		b := snap.ToDomain()

		if derr = uc.rules.Cancellation.CanCancel(b, actor, now); derr != nil {
			return derr
		}
		if derr = tx.Bookings().Delete(ctx, tx.DB(), b.ID()); derr != nil {
			return storageErr(derr, ErrBookingNotFound)
		}
		return appendBookingEvent(ctx, tx, event.TypeBookingDeleted, b, actor.ID, now)
	})
}

func appendBookingEvent(ctx context.Context, tx shared.Tx, t event.Type, b *booking.Booking, actorID uuid.UUID, now time.Time) error {
	e, err := event.New(t, b.ID(), actorID, event.BookingPayload{
		OwnerID: b.OwnerID(),
		Room:    b.Room().String(),
		Title:   b.Title().String(),
		Start:   b.Slot().Start(),
		End:     b.Slot().End(),
	}, now)
	if err != nil {
		return errs.Wrap(err, "failed to encode booking event")
	}
	return storageErr(tx.Outbox().Append(ctx, tx.DB(), e), nil)
}

// Lock keys are taken in this order: owner month first, then room.
func quotaLockKey(ownerID uuid.UUID, month booking.TimeRange) string {
	return "quota:" + ownerID.String() + ":" + month.Start().Format("2006-01")
}

func roomLockKey(room booking.Room) string {
	return "room:" + room.String()
}
