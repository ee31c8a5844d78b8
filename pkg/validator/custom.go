package validator

// CustomFunc validates a whole instance and returns a failure, or nil.
type CustomFunc[T any] func(instance T) *Failure

// CustomContextFunc is a CustomFunc that also receives the validation context.
type CustomContextFunc[T any] func(instance T, ctx *ValidationContext[T]) *Failure

// delegateRule wraps a custom function as a rule. Custom rules describe the
// object as a whole, so they carry no property name and are not subject to
// the selector.
type delegateRule[T any] struct {
	fn CustomContextFunc[T]
}

func newDelegateRule[T any](fn CustomContextFunc[T]) *delegateRule[T] {
	return &delegateRule[T]{fn: fn}
}

func (r *delegateRule[T]) PropertyName() string { return "" }

func (r *delegateRule[T]) DisplayName() string { return "" }

func (r *delegateRule[T]) Validators() []PropertyValidator { return nil }

func (r *delegateRule[T]) Validate(ctx *ValidationContext[T]) ([]Failure, error) {
	f := r.fn(ctx.InstanceToValidate(), ctx)
	if f == nil {
		return nil, nil
	}
	return []Failure{*f}, nil
}
