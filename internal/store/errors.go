package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Error kinds. Handlers match them with errors.Is and translate them to
// HTTP statuses: validation 400, conflict 409, not found 404.
var (
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
)

// Error is a domain failure with an optional offending request field.
type Error struct {
	Kind    error
	Field   string
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func validationError(field, format string, args ...any) error {
	return &Error{Kind: ErrValidation, Field: field, Message: fmt.Sprintf(format, args...)}
}

func conflictError(field, format string, args ...any) error {
	return &Error{Kind: ErrConflict, Field: field, Message: fmt.Sprintf(format, args...)}
}

func notFoundError(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

// notFoundOr converts gorm's missing-row error into ErrNotFound and passes
// anything else through.
func notFoundOr(err error, what string, id int64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFoundError("%s %d not found", what, id)
	}
	return err
}
