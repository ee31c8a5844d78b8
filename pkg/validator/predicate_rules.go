package validator

const predicateMessage = "The specified condition was not met for '{PropertyName}'."

// Predicate passes when fn returns true for the property value.
// An absent value (nil or nil pointer) is passed to fn as the zero P.
func Predicate[P any](fn func(value P) bool) *Check {
	if fn == nil {
		panic("validator: Predicate requires a function")
	}
	return NewCheck("predicate", predicateMessage, func(ctx *PropertyContext) (bool, error) {
		v, _, err := valueAs[P](ctx)
		if err != nil {
			return false, err
		}
		return fn(v), nil
	})
}

// PredicateWith passes when fn returns true for the owning instance and the
// property value, which allows cross-property comparisons.
func PredicateWith[T, P any](fn func(instance T, value P) bool) *Check {
	if fn == nil {
		panic("validator: PredicateWith requires a function")
	}
	return NewCheck("predicate", predicateMessage, func(ctx *PropertyContext) (bool, error) {
		v, _, err := valueAs[P](ctx)
		if err != nil {
			return false, err
		}
		instance, _ := ctx.Instance.(T)
		return fn(instance, v), nil
	})
}
