package httperr

import (
	"net/http"

	"coworking-booking/internal/domain/booking"
	"coworking-booking/internal/pkg/errs"
	"coworking-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

type QuotaDetail struct {
	RemainingHours float64 `json:"remaining_hours"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps a use case error to its HTTP status and aborts with it.
func Abort(c *gin.Context, err error) {
	status, msg, detail := Classify(err)
	AbortWithError(c, status, err, msg, detail)
}

// Classify picks status, public message and detail for err. Domain rejections
// expose their own message; infrastructure failures never do.
func Classify(err error) (int, string, any) {
	var quota *booking.QuotaExceededError
	switch {
	case errs.As(err, &quota):
		return http.StatusUnprocessableEntity, booking.ErrQuotaExceeded.Error(), QuotaDetail{RemainingHours: quota.RemainingHours}
	case errs.Is(err, booking.ErrRoomConflict):
		return http.StatusConflict, booking.ErrRoomConflict.Error(), nil
	case errs.Is(err, commands.ErrEmailTaken):
		return http.StatusConflict, commands.ErrEmailTaken.Error(), nil
	case errs.Is(err, commands.ErrInvalidCredentials):
		return http.StatusUnauthorized, commands.ErrInvalidCredentials.Error(), nil
	case errs.Is(err, commands.ErrTokenValidation):
		return http.StatusUnauthorized, "Invalid or expired token", nil
	case errs.Is(err, errs.ErrDomainValidation):
		return http.StatusBadRequest, err.Error(), nil
	case errs.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, err.Error(), nil
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, err.Error(), nil
	case errs.Is(err, errs.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, "Storage unavailable, try again later", nil
	default:
		return http.StatusInternalServerError, "Internal server error", nil
	}
}
