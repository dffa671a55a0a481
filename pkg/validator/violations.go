package validator

import (
	"errors"
	"strings"
)

// Violations is the ordered list of errors produced by a Validator run.
type Violations []error

func (v Violations) Error() string {
	if len(v) == 0 {
		return ErrValidationFailed.Error()
	}

	parts := make([]string, 0, len(v))
	for _, err := range v {
		parts = append(parts, err.Error())
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

// Is reports ErrValidationFailed for any non-empty list. Individual
// violations are reached through Unwrap.
func (v Violations) Is(target error) bool {
	return len(v) > 0 && target == ErrValidationFailed
}

// Unwrap exposes the individual violations to errors.Is and errors.As.
func (v Violations) Unwrap() []error {
	return v
}

// Err returns nil when there are no violations, v otherwise.
func (v Violations) Err() error {
	if v.IsEmpty() {
		return nil
	}
	return v
}

// Has reports whether any violation matches target.
func (v Violations) Has(target error) bool {
	for _, err := range v {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (v Violations) IsEmpty() bool {
	return len(v) == 0
}

func (v Violations) Len() int {
	return len(v)
}

// Messages renders each violation, in order.
func (v Violations) Messages() []string {
	out := make([]string, len(v))
	for i, err := range v {
		out[i] = err.Error()
	}
	return out
}

// As returns the violations whose dynamic type is E, in order.
func As[E error](v Violations) []E {
	var out []E
	for _, err := range v {
		var e E
		if errors.As(err, &e) {
			out = append(out, e)
		}
	}
	return out
}

// Extract returns the Violations carried by err, or nil.
func Extract(err error) Violations {
	if err == nil {
		return nil
	}

	var v Violations
	if errors.As(err, &v) {
		return v
	}
	return nil
}

func IsValidationError(err error) bool {
	return Extract(err) != nil
}
