package password

import (
	"coworking-booking/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed   = errs.New("password hashing failed")
	ErrMismatch        = errs.New("password does not match")
	ErrInvalidPassword = errs.NewValidation("password must be 1 to 72 bytes")
)

const DefaultCost = bcrypt.DefaultCost

// bcrypt ignores everything past 72 bytes; longer inputs are refused instead.
const maxInputBytes = 72

func HashPassword(password string) (string, error) {
	if password == "" || len(password) > maxInputBytes {
		return "", ErrInvalidPassword
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", errs.Mark(err, ErrHashingFailed)
	}

	return string(hashedBytes), nil
}

// ComparePassword returns ErrMismatch for a wrong password and a wrapped
// error for a malformed hash.
func ComparePassword(hashedPassword, password string) error {
	if hashedPassword == "" || password == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err == nil {
		return nil
	}
	if errs.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return errs.Wrap(err, "stored password hash is unusable")
}
