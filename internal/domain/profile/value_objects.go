package profile

import (
	"strings"
	"unicode/utf8"

	"coworking-booking/internal/pkg/errs"
)

const (
	MaxFullNameLength    = 120
	MaxCompanyNameLength = 120
	MaxBioLength         = 1000
	MaxPhoneLength       = 30
	MaxPhotoURLLength    = 500
	UnitCount            = 12
)

var (
	ErrEmptyFullName   = errs.NewValidation("full name is required")
	ErrFullNameTooLong = errs.NewValidation("full name exceeds maximum length")
	ErrCompanyTooLong  = errs.NewValidation("company name exceeds maximum length")
	ErrInvalidUnit     = errs.NewValidation("unit must be between 01 and 12")
	ErrBioTooLong      = errs.NewValidation("bio exceeds maximum length")
	ErrPhoneTooLong    = errs.NewValidation("phone exceeds maximum length")
	ErrPhotoURLTooLong = errs.NewValidation("photo url exceeds maximum length")
	ErrInvalidQuota    = errs.NewValidation("monthly hours quota must be positive")

	ErrProfileNotFound    = errs.NewNotFound("profile not found")
	ErrProfileNotApproved = errs.NewForbidden("profile is waiting for approval")
)

// Unit is the coworking suite a member occupies, "01" through "12".
type Unit struct {
	value string
}

func NewUnit(s string) (Unit, error) {
	s = strings.TrimSpace(s)
	if !IsValidUnit(s) {
		return Unit{}, ErrInvalidUnit
	}
	return Unit{value: s}, nil
}

func IsValidUnit(s string) bool {
	if len(s) != 2 || s[0] < '0' || s[0] > '1' || s[1] < '0' || s[1] > '9' {
		return false
	}
	n := int(s[0]-'0')*10 + int(s[1]-'0')
	return n >= 1 && n <= UnitCount
}

func (u Unit) String() string { return u.value }

func NewFullName(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyFullName
	}
	if utf8.RuneCountInString(s) > MaxFullNameLength {
		return "", ErrFullNameTooLong
	}
	return s, nil
}

func optionalText(s *string, limit int, tooLong error) (*string, error) {
	if s == nil {
		return nil, nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(v) > limit {
		return nil, tooLong
	}
	return &v, nil
}
