package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Failure describes a single validation problem.
type Failure struct {
	// PropertyName is the full dotted path of the failing property.
	PropertyName string
	// Message is the user-facing message built from the check's template.
	Message string
	// AttemptedValue is the property value that failed validation.
	AttemptedValue any
	// CustomState is an optional payload attached with WithState.
	CustomState any
	// Code identifies the check that produced the failure.
	Code string
}

// NewFailure creates a failure for the given property path and message.
// It is the usual return value of custom rules.
func NewFailure(propertyName, message string, attemptedValue any) *Failure {
	return &Failure{
		PropertyName:   propertyName,
		Message:        message,
		AttemptedValue: attemptedValue,
	}
}

func (f Failure) String() string {
	if f.PropertyName == "" {
		return f.Message
	}
	return f.PropertyName + ": " + f.Message
}

// Failures is an ordered collection of validation failures.
// It implements the error interface so a failed validation can travel
// through ordinary error returns.
type Failures []Failure

func (fs Failures) Error() string {
	if len(fs) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(fs))
	for _, f := range fs {
		parts = append(parts, f.String())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether any failure was recorded for the property path.
func (fs Failures) Has(propertyName string) bool {
	for _, f := range fs {
		if f.PropertyName == propertyName {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for the property path, in order.
func (fs Failures) Get(propertyName string) []string {
	var messages []string
	for _, f := range fs {
		if f.PropertyName == propertyName {
			messages = append(messages, f.Message)
		}
	}
	return messages
}

// For returns the failures recorded for the property path, in order.
func (fs Failures) For(propertyName string) []Failure {
	var out []Failure
	for _, f := range fs {
		if f.PropertyName == propertyName {
			out = append(out, f)
		}
	}
	return out
}

// Fields returns the distinct failing property paths in first-seen order.
func (fs Failures) Fields() []string {
	var fields []string
	seen := make(map[string]bool, len(fs))
	for _, f := range fs {
		if !seen[f.PropertyName] {
			fields = append(fields, f.PropertyName)
			seen[f.PropertyName] = true
		}
	}
	return fields
}

// Result is the outcome of a single validation run.
// It is built once from a completed failure list and never changes.
type Result struct {
	failures Failures
}

// NewResult creates a result holding a copy of failures.
func NewResult(failures []Failure) *Result {
	if len(failures) == 0 {
		return &Result{}
	}
	cp := make(Failures, len(failures))
	copy(cp, failures)
	return &Result{failures: cp}
}

// IsValid reports whether the run produced no failures.
func (r *Result) IsValid() bool {
	return len(r.failures) == 0
}

// Failures returns a copy of the failures in reporting order.
func (r *Result) Failures() Failures {
	if len(r.failures) == 0 {
		return nil
	}
	cp := make(Failures, len(r.failures))
	copy(cp, r.failures)
	return cp
}

// Len returns the number of failures.
func (r *Result) Len() int {
	return len(r.failures)
}

// Err returns the failures as an error, or nil when the result is valid.
func (r *Result) Err() error {
	if r.IsValid() {
		return nil
	}
	return r.Failures()
}

func (r *Result) String() string {
	if r.IsValid() {
		return "valid"
	}
	return fmt.Sprintf("%d validation failure(s): %s", len(r.failures), r.failures.Error())
}

// ExtractFailures returns the Failures wrapped in err, or nil.
func ExtractFailures(err error) Failures {
	if err == nil {
		return nil
	}

	var fs Failures
	if errors.As(err, &fs) {
		return fs
	}
	return nil
}

// IsValidationError reports whether err carries validation failures.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var fs Failures
	return errors.As(err, &fs)
}
