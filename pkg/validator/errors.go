package validator

import "errors"

var (
	// ErrValidationFailed matches any non-empty Violations via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrValidationAborted is returned when concurrent validation is interrupted
	// by context cancellation.
	ErrValidationAborted = errors.New("validation aborted")
)
