package domain

import "errors"

var (
	ErrRecordNotFound = errors.New("record not found")
)

// InvalidInputError reports a request that was rejected locally, before any
// remote call was made. It is always recoverable by the caller.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return e.Message
}

func NewInvalidInputError(message string) error {
	return &InvalidInputError{Message: message}
}

func IsInvalidInput(err error) bool {
	var invalidInput *InvalidInputError
	return errors.As(err, &invalidInput)
}

// GatewayError wraps a failed remote call. Message carries the server-provided
// text when the store returned one, otherwise a generic description. The
// original cause is retained for logging only and must not be used for
// control flow.
type GatewayError struct {
	Message string
	Cause   error
}

func (e *GatewayError) Error() string {
	return e.Message
}

func (e *GatewayError) Unwrap() error {
	return e.Cause
}
