package booking

import (
	"fmt"

	"coworking-booking/internal/pkg/errs"
)

var (
	ErrInvalidRange        = errs.NewValidation("end time must be after start time")
	ErrEmptyRoom           = errs.NewValidation("room is required")
	ErrRoomTooLong         = errs.NewValidation("room exceeds maximum length")
	ErrEmptyTitle          = errs.NewValidation("title is required")
	ErrTitleTooLong        = errs.NewValidation("title exceeds maximum length")
	ErrRequirementsTooLong = errs.NewValidation("requirements exceed maximum length")
	ErrInvalidQuota        = errs.NewValidation("quota must be positive")

	ErrQuotaExceeded = errs.New("monthly hour quota exceeded")
	ErrRoomConflict  = errs.New("room already booked within the minimum gap")

	ErrNotBookingOwner          = errs.NewForbidden("booking belongs to another user")
	ErrCancellationWindowClosed = errs.NewForbidden("booking starts too soon to be cancelled")
)

// QuotaExceededError carries the hours still available this month.
type QuotaExceededError struct {
	RemainingHours float64
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("%s: %.2f hours remaining", ErrQuotaExceeded.Error(), e.RemainingHours)
}

func (e *QuotaExceededError) Is(target error) bool {
	return target == ErrQuotaExceeded
}
