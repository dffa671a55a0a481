// Package validator provides a small, generic rule engine that evaluates a set
// of independent rules against a single entity and reports every violation
// found, not just the first one.
//
// A Rule is any value with a Run(*T) error method. Returning nil accepts the
// entity; returning an error reports exactly one typed violation. Rules receive
// the entity by pointer for read-only access and must not mutate it, so the
// same rule can be run any number of times with the same outcome.
//
// # Architecture
//
// Core building blocks:
//   - Rule / RuleFunc – the single-method capability every check implements
//   - Validator       – an immutable, ordered collection of rules
//   - Builder         – fluent accumulator producing a Validator snapshot
//   - Violations      – ordered []error that itself satisfies error
//
// Validate never short-circuits: each rule runs and each failure is appended
// in rule insertion order. ValidateConcurrently evaluates rules in parallel
// with golang.org/x/sync/errgroup and reassembles the result in the same
// order.
//
// # Usage
//
//	v := validator.NewBuilder[Order]().
//	    WithRule(validator.RuleFunc[Order](func(o *Order) error {
//	        if o.Total <= 0 {
//	            return ErrEmptyOrder
//	        }
//	        return nil
//	    })).
//	    Build()
//
//	if err := v.Validate(&order).Err(); err != nil {
//	    // errors.Is(err, validator.ErrValidationFailed) == true
//	    // errors.Is(err, ErrEmptyOrder) == true
//	}
//
// # Error Handling
//
// Violations implements Error, Is and Unwrap() []error, so the standard
// errors.Is / errors.As helpers see both ErrValidationFailed and every
// individual violation. As[E] filters violations by concrete type.
//
// # Logging
//
// WithLogger attaches a *slog.Logger; each violation and a per-run summary are
// logged at debug level. The default logger discards output.
package validator
