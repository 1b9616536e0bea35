package apperrors

import (
	"errors"
	"strings"
)

// ErrNotFound indicates that a referenced month, expense or budget is absent.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed one or more validation rules.
var ErrValidation = errors.New("validation error")

// ErrDuplicateMonth indicates an attempt to create a month for a (month, year)
// pair that already exists.
var ErrDuplicateMonth = errors.New("month already exists")

// ErrMissingCustomCategory indicates that the "Other" category was selected
// without a custom category value to resolve it to.
var ErrMissingCustomCategory = errors.New("custom category not specified")

// ErrPersistence indicates that writing the ledger state to durable storage
// failed. In-memory state remains authoritative; this is never fatal.
var ErrPersistence = errors.New("persistence failure")

// ErrCorruptData indicates that the stored ledger document could not be parsed
// or is missing its expected shape. Callers degrade to an empty state.
var ErrCorruptData = errors.New("stored data is corrupt")

// ValidationError carries every rule violation detected for one input, so the
// caller can surface them all together rather than one at a time.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation error: " + strings.Join(e.Messages, "; ")
}

// Unwrap makes errors.Is(err, ErrValidation) hold for every ValidationError.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError wraps a non-empty list of rule violations.
func NewValidationError(messages []string) error {
	return &ValidationError{Messages: messages}
}

// ValidationMessages extracts the message list from a ValidationError anywhere
// in err's chain, or nil when err is not a validation failure.
func ValidationMessages(err error) []string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Messages
	}
	return nil
}
