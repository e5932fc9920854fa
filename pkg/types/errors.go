package types

import "errors"

// Field validation errors. A *ValidationError wraps exactly one of these.
var (
	ErrInvalidName     = errors.New("invalid name")
	ErrInvalidPhone    = errors.New("invalid phone")
	ErrInvalidBirthday = errors.New("invalid birthday")
)

// Book operation errors.
var (
	ErrNotFound      = errors.New("contact not found")
	ErrInvalidRecord = errors.New("invalid record")
)

// ValidationError reports a raw value that a field type refused at
// construction. Message is the user-facing text; Kind is the sentinel
// used with errors.Is.
type ValidationError struct {
	Kind    error
	Value   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap returns the validation kind so errors.Is(err, ErrInvalidPhone)
// and friends work through any amount of wrapping.
func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// IsValidation reports whether err is (or wraps) a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Backend lifecycle errors.
var (
	ErrBookDetached    = errors.New("book is detached")
	ErrAlreadyAttached = errors.New("book is already attached")
)
