package logger

import (
	"fmt"
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups non-nil errors under the key "errors", indexed by position.
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.String(strconv.Itoa(i), err.Error()))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under the key "error". Nil yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String("error", err.Error())
}

// Violation records a rule violation message under the key "violation".
func Violation(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String("violation", err.Error())
}

// RuleType records the Go type of a rule under the key "rule".
func RuleType(rule any) slog.Attr {
	if rule == nil {
		return slog.Attr{}
	}
	return slog.String("rule", fmt.Sprintf("%T", rule))
}

// Count records a count under the given key.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
