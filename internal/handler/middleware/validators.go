package middleware

import (
	"coworking-booking/internal/domain/profile"
	"coworking-booking/internal/pkg/errs"
	"coworking-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding tags used by request DTOs.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errs.New("gin binding engine is not go-playground/validator")
	}
	if err := v.RegisterValidation("unit", validateUnit); err != nil {
		return errs.Wrap(err, "register unit validator")
	}
	if err := v.RegisterValidation("booking_scope", validateBookingScope); err != nil {
		return errs.Wrap(err, "register booking_scope validator")
	}
	return nil
}

// An empty unit clears the field, so it passes.
func validateUnit(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == "" || profile.IsValidUnit(s)
}

func validateBookingScope(fl validator.FieldLevel) bool {
	_, err := queries.ParseScope(fl.Field().String())
	return err == nil
}
