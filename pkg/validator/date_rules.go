package validator

import "time"

// Before checks that a time is strictly before limit.
func Before(limit time.Time) *Check {
	return typedCheck("before", "'{PropertyName}' must be before {ComparisonValue}.",
		func(_ *PropertyContext, v time.Time) bool { return v.Before(limit) }).
		WithArg("ComparisonValue", limit.Format(time.RFC3339))
}

// After checks that a time is strictly after limit.
func After(limit time.Time) *Check {
	return typedCheck("after", "'{PropertyName}' must be after {ComparisonValue}.",
		func(_ *PropertyContext, v time.Time) bool { return v.After(limit) }).
		WithArg("ComparisonValue", limit.Format(time.RFC3339))
}

// InPast checks that a time lies before the moment of validation.
func InPast() *Check {
	return typedCheck("in_past", "'{PropertyName}' must be in the past.",
		func(_ *PropertyContext, v time.Time) bool { return v.Before(time.Now()) })
}

// InFuture checks that a time lies after the moment of validation.
func InFuture() *Check {
	return typedCheck("in_future", "'{PropertyName}' must be in the future.",
		func(_ *PropertyContext, v time.Time) bool { return v.After(time.Now()) })
}
