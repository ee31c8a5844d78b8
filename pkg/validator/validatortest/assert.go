// Package validatortest provides testify-based assertions for validation
// results.
package validatortest

import (
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

// HasFailureFor asserts that res contains at least one failure for the
// property path and returns those failures.
func HasFailureFor(t assert.TestingT, res *validator.Result, path string, msgAndArgs ...any) []validator.Failure {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if !assert.NotNil(t, res, msgAndArgs...) {
		return nil
	}
	found := res.Failures().For(path)
	if len(found) == 0 {
		assert.Fail(t, "expected a failure for "+path, append([]any{"got failures for %v"}, res.Failures().Fields())...)
		return nil
	}
	return found
}

// NoFailureFor asserts that res contains no failure for the property path.
func NoFailureFor(t assert.TestingT, res *validator.Result, path string, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if !assert.NotNil(t, res, msgAndArgs...) {
		return false
	}
	return assert.Empty(t, res.Failures().Get(path), msgAndArgs...)
}

// HasFailureWithCode asserts that res contains a failure with code for path.
func HasFailureWithCode(t assert.TestingT, res *validator.Result, path, code string, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	for _, f := range HasFailureFor(t, res, path, msgAndArgs...) {
		if f.Code == code {
			return true
		}
	}
	return assert.Fail(t, "expected failure code "+code+" for "+path, msgAndArgs...)
}

// FailureMessages returns the messages of res keyed by property path, in
// reporting order. It is nil for a valid result.
func FailureMessages(res *validator.Result) map[string][]string {
	if res == nil || res.IsValid() {
		return nil
	}
	out := make(map[string][]string)
	for _, f := range res.Failures() {
		out[f.PropertyName] = append(out[f.PropertyName], f.Message)
	}
	return out
}
