package directory

import "errors"

// ErrValidation is the sentinel every ValidationError matches with errors.Is.
var ErrValidation = errors.New("validation failed")

// ValidationError reports a rejected request payload. Message is safe to show to clients.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
