package validator

import (
	"fmt"
	"slices"
	"strings"
)

// OneOf checks that the value is one of allowed.
func OneOf[P comparable](allowed ...P) *Check {
	allowed = slices.Clone(allowed)
	return typedCheck("one_of", "'{PropertyName}' must be one of: {Values}.",
		func(_ *PropertyContext, v P) bool { return slices.Contains(allowed, v) }).
		WithArg("Values", joinValues(allowed))
}

// NoneOf checks that the value is not one of forbidden.
func NoneOf[P comparable](forbidden ...P) *Check {
	forbidden = slices.Clone(forbidden)
	return typedCheck("none_of", "'{PropertyName}' must not be one of: {Values}.",
		func(_ *PropertyContext, v P) bool { return !slices.Contains(forbidden, v) }).
		WithArg("Values", joinValues(forbidden))
}

// OneOfFold is OneOf for strings, ignoring case.
func OneOfFold(allowed ...string) *Check {
	allowed = slices.Clone(allowed)
	return typedCheck("one_of", "'{PropertyName}' must be one of: {Values}.",
		func(_ *PropertyContext, v string) bool {
			return slices.ContainsFunc(allowed, func(a string) bool { return strings.EqualFold(a, v) })
		}).
		WithArg("Values", joinValues(allowed))
}

func joinValues[P any](values []P) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}
