package services

import (
	"fmt"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Sentinel errors handlers map onto HTTP statuses. Services attach free-text
// context with fmt.Errorf("%w: ...") so the message survives to the response.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
)

func validationErr(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func notFoundErr(what string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, what)
}

func conflictErr(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

// orNotFound converts gorm's record-not-found into the service taxonomy and
// wraps any other store error with context.
func orNotFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFoundErr(what)
	}
	return errors.Wrap(err, "store failure")
}
