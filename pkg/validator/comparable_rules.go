package validator

import "cmp"

// Equal checks that the value equals expected.
func Equal[P comparable](expected P) *Check {
	return typedCheck("equal", "'{PropertyName}' should be equal to '{ComparisonValue}'.",
		func(_ *PropertyContext, v P) bool { return v == expected }).
		WithArg("ComparisonValue", expected)
}

// NotEqual checks that the value differs from unexpected.
func NotEqual[P comparable](unexpected P) *Check {
	return typedCheck("not_equal", "'{PropertyName}' should not be equal to '{ComparisonValue}'.",
		func(_ *PropertyContext, v P) bool { return v != unexpected }).
		WithArg("ComparisonValue", unexpected)
}

// GreaterThan checks that the value is strictly greater than bound.
func GreaterThan[N cmp.Ordered](bound N) *Check {
	return compareCheck("greater_than", "'{PropertyName}' must be greater than '{ComparisonValue}'.",
		bound, func(c int) bool { return c > 0 })
}

// GreaterThanOrEqual checks that the value is greater than or equal to bound.
func GreaterThanOrEqual[N cmp.Ordered](bound N) *Check {
	return compareCheck("greater_than_or_equal", "'{PropertyName}' must be greater than or equal to '{ComparisonValue}'.",
		bound, func(c int) bool { return c >= 0 })
}

// LessThan checks that the value is strictly less than bound.
func LessThan[N cmp.Ordered](bound N) *Check {
	return compareCheck("less_than", "'{PropertyName}' must be less than '{ComparisonValue}'.",
		bound, func(c int) bool { return c < 0 })
}

// LessThanOrEqual checks that the value is less than or equal to bound.
func LessThanOrEqual[N cmp.Ordered](bound N) *Check {
	return compareCheck("less_than_or_equal", "'{PropertyName}' must be less than or equal to '{ComparisonValue}'.",
		bound, func(c int) bool { return c <= 0 })
}

// InclusiveBetween checks that from <= value <= to.
func InclusiveBetween[N cmp.Ordered](from, to N) *Check {
	return typedCheck("inclusive_between", "'{PropertyName}' must be between {From} and {To}. You entered {PropertyValue}.",
		func(_ *PropertyContext, v N) bool { return cmp.Compare(v, from) >= 0 && cmp.Compare(v, to) <= 0 }).
		WithArg("From", from).
		WithArg("To", to)
}

// ExclusiveBetween checks that from < value < to.
func ExclusiveBetween[N cmp.Ordered](from, to N) *Check {
	return typedCheck("exclusive_between", "'{PropertyName}' must be between {From} and {To} (exclusive). You entered {PropertyValue}.",
		func(_ *PropertyContext, v N) bool { return cmp.Compare(v, from) > 0 && cmp.Compare(v, to) < 0 }).
		WithArg("From", from).
		WithArg("To", to)
}

func compareCheck[N cmp.Ordered](code, message string, bound N, accept func(int) bool) *Check {
	return typedCheck(code, message, func(_ *PropertyContext, v N) bool {
		return accept(cmp.Compare(v, bound))
	}).WithArg("ComparisonValue", bound)
}
