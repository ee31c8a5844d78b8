package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Property records a property path under the key "property".
// An empty path (the root object) returns an empty Attr.
func Property(path string) slog.Attr {
	if path == "" {
		return slog.Attr{}
	}
	return slog.String("property", path)
}

// Rule records a check name under the key "rule".
func Rule(name string) slog.Attr {
	return slog.String("rule", name)
}

// FailureCount records the number of validation failures under the key "failures".
func FailureCount(n int) slog.Attr {
	return slog.Int("failures", n)
}

// Locale records a message locale under the key "locale".
// If locale is empty, it returns an empty Attr.
func Locale(locale string) slog.Attr {
	if locale == "" {
		return slog.Attr{}
	}
	return slog.String("locale", locale)
}

// Duration records an elapsed time under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
