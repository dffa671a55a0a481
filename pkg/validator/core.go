package validator

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/dmitrymomot/drivercheck/pkg/logger"
)

// Rule inspects an entity and reports at most one violation.
// A nil error means the entity satisfies the rule.
type Rule[T any] interface {
	Run(t *T) error
}

// RuleFunc adapts an ordinary function to the Rule interface.
type RuleFunc[T any] func(t *T) error

func (f RuleFunc[T]) Run(t *T) error {
	return f(t)
}

// Option configures a Validator.
type Option func(*options)

type options struct {
	log         *slog.Logger
	concurrency int
}

// WithLogger sets the logger used to report violations.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithConcurrency bounds the number of rules evaluated at once by
// ValidateConcurrently. Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

func defaultOptions() options {
	return options{
		log:         logger.Discard(),
		concurrency: runtime.GOMAXPROCS(0),
	}
}

// Validator runs an ordered set of rules against an entity and collects
// every violation. It is immutable once built and safe for concurrent use.
type Validator[T any] struct {
	rules []Rule[T]
	opts  options
}

// New creates a Validator from the given rules, preserving their order.
// Nil rules are skipped.
func New[T any](rules []Rule[T], opts ...Option) *Validator[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rs := make([]Rule[T], 0, len(rules))
	for _, r := range rules {
		if r != nil {
			rs = append(rs, r)
		}
	}

	return &Validator[T]{rules: rs, opts: o}
}

// Of is a variadic shorthand for New without options.
func Of[T any](rules ...Rule[T]) *Validator[T] {
	return New(rules)
}

// Validate runs every rule against t and returns the violations in rule
// order. A failing rule never prevents later rules from running.
// An empty result means t satisfies every rule.
func (v *Validator[T]) Validate(t *T) Violations {
	var violations Violations
	for _, r := range v.rules {
		if err := r.Run(t); err != nil {
			violations = append(violations, err)
		}
	}
	v.report(violations)
	return violations
}

// Rules returns a copy of the validator's rules.
func (v *Validator[T]) Rules() []Rule[T] {
	out := make([]Rule[T], len(v.rules))
	copy(out, v.rules)
	return out
}

// Len returns the number of rules.
func (v *Validator[T]) Len() int {
	return len(v.rules)
}

func (v *Validator[T]) report(violations Violations) {
	log := v.opts.log
	if !log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	for _, err := range violations {
		log.Debug("rule violated", logger.Component("validator"), logger.Violation(err))
	}
	log.Debug("validation finished",
		logger.Component("validator"),
		logger.Count("rules", len(v.rules)),
		logger.Count("violations", len(violations)),
	)
}
