package validator

// RuleBuilder declares the checks of one property rule. Methods that
// customise a check (WithMessage, WithState, When, ...) apply to the check
// added last. A builder is only usable until the validator first runs.
type RuleBuilder[T, P any] struct {
	validator *Validator[T]
	rule      *PropertyRule[T]
}

// Rule returns the rule being declared.
func (b *RuleBuilder[T, P]) Rule() *PropertyRule[T] { return b.rule }

// Must appends checks to the rule in the given order.
func (b *RuleBuilder[T, P]) Must(validators ...PropertyValidator) *RuleBuilder[T, P] {
	b.validator.ensureOpen()
	for _, pv := range validators {
		b.rule.AddValidator(pv)
	}
	return b
}

// SetValidator appends a single check.
func (b *RuleBuilder[T, P]) SetValidator(pv PropertyValidator) *RuleBuilder[T, P] {
	return b.Must(pv)
}

// NotNil appends a NotNil check.
func (b *RuleBuilder[T, P]) NotNil() *RuleBuilder[T, P] { return b.Must(NotNil()) }

// NotEmpty appends a NotEmpty check.
func (b *RuleBuilder[T, P]) NotEmpty() *RuleBuilder[T, P] { return b.Must(NotEmpty()) }

// Empty appends an Empty check.
func (b *RuleBuilder[T, P]) Empty() *RuleBuilder[T, P] { return b.Must(Empty()) }

// Predicate appends a check that passes when fn returns true for the value.
func (b *RuleBuilder[T, P]) Predicate(fn func(value P) bool) *RuleBuilder[T, P] {
	return b.Must(Predicate(fn))
}

// PredicateWith appends a check that receives the instance and the value.
func (b *RuleBuilder[T, P]) PredicateWith(fn func(instance T, value P) bool) *RuleBuilder[T, P] {
	return b.Must(PredicateWith(fn))
}

// SetChild validates the property value with another validator. Failures of
// the child are reported under this property's path.
func (b *RuleBuilder[T, P]) SetChild(child *Validator[P]) *RuleBuilder[T, P] {
	return b.Must(ChildValidator(child))
}

// WithName overrides the display name of the property.
func (b *RuleBuilder[T, P]) WithName(name string) *RuleBuilder[T, P] {
	b.validator.ensureOpen()
	b.rule.SetDisplayName(name)
	return b
}

// Cascade sets the cascade mode of this rule.
func (b *RuleBuilder[T, P]) Cascade(mode CascadeMode) *RuleBuilder[T, P] {
	b.validator.ensureOpen()
	b.rule.SetCascadeMode(mode)
	return b
}

// OnAnyFailure sets a hook run once after the rule when any check failed.
func (b *RuleBuilder[T, P]) OnAnyFailure(fn func(instance T)) *RuleBuilder[T, P] {
	b.validator.ensureOpen()
	b.rule.OnFailure(fn)
	return b
}

// WithMessage sets a literal message template on the last check.
func (b *RuleBuilder[T, P]) WithMessage(template string) *RuleBuilder[T, P] {
	b.currentCheck("WithMessage").WithMessage(template)
	return b
}

// WithMessageKey reads the message of the last check from the validator's
// catalog under key, falling back to the check's default message.
func (b *RuleBuilder[T, P]) WithMessageKey(key string) *RuleBuilder[T, P] {
	c := b.currentCheck("WithMessageKey")
	c.WithMessageSource(Localized(b.validator.settings.catalog, key, c.DefaultMessage()))
	return b
}

// WithMessageArgs adds positional message arguments ({0}, {1}, ...) to the
// last check. They are evaluated against the instance when a failure occurs.
func (b *RuleBuilder[T, P]) WithMessageArgs(fns ...func(instance T) any) *RuleBuilder[T, P] {
	c := b.currentCheck("WithMessageArgs")
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		c.WithMessageArgs(func(instance any) any { return fn(instance.(T)) })
	}
	return b
}

// WithState attaches custom state, computed from the instance at failure
// time, to failures of the last check.
func (b *RuleBuilder[T, P]) WithState(fn func(instance T) any) *RuleBuilder[T, P] {
	c := b.currentCheck("WithState")
	if fn == nil {
		c.WithState(nil)
		return b
	}
	c.WithState(func(instance any) any { return fn(instance.(T)) })
	return b
}

// WithCode overrides the failure code of the last check.
func (b *RuleBuilder[T, P]) WithCode(code string) *RuleBuilder[T, P] {
	b.currentCheck("WithCode").WithCode(code)
	return b
}

// When runs the last check only when fn returns true for the instance.
func (b *RuleBuilder[T, P]) When(fn func(instance T) bool) *RuleBuilder[T, P] {
	b.validator.ensureOpen()
	current := b.rule.CurrentValidator()
	if current == nil {
		panic("validator: When requires a preceding validator")
	}
	b.rule.ReplaceCurrentValidator(Conditional(current, func(instance any) bool {
		return fn(instance.(T))
	}))
	return b
}

// Unless runs the last check only when fn returns false for the instance.
func (b *RuleBuilder[T, P]) Unless(fn func(instance T) bool) *RuleBuilder[T, P] {
	return b.When(func(instance T) bool { return !fn(instance) })
}

func (b *RuleBuilder[T, P]) currentCheck(op string) *Check {
	b.validator.ensureOpen()
	pv := b.rule.CurrentValidator()
	for pv != nil {
		if c, ok := pv.(*Check); ok {
			return c
		}
		u, ok := pv.(interface{ Unwrap() PropertyValidator })
		if !ok {
			break
		}
		pv = u.Unwrap()
	}
	panic("validator: " + op + " requires a preceding check")
}

// ForEach validates every element of a slice property with child. Element
// failures are reported as Property[i].Member.
func ForEach[T, C any](b *RuleBuilder[T, []C], child *Validator[C]) *RuleBuilder[T, []C] {
	return b.Must(ChildCollectionValidator(child))
}
