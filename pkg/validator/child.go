package validator

import (
	"fmt"
	"reflect"
)

// Conditional wraps pv so that it only runs when cond returns true for the
// instance that owns the property.
func Conditional(pv PropertyValidator, cond func(instance any) bool) PropertyValidator {
	if pv == nil || cond == nil {
		panic("validator: Conditional requires a validator and a condition")
	}
	return &conditional{inner: pv, cond: cond}
}

type conditional struct {
	inner PropertyValidator
	cond  func(instance any) bool
}

func (c *conditional) Name() string { return c.inner.Name() }

func (c *conditional) Unwrap() PropertyValidator { return c.inner }

func (c *conditional) Validate(ctx *PropertyContext) ([]Failure, error) {
	if !c.cond(ctx.Instance) {
		return nil, nil
	}
	return c.inner.Validate(ctx)
}

// ChildValidator validates a nested object with its own validator. The child
// runs with the parent chain extended by the property name, so its failures
// read Parent.Property.Member. A nil value is skipped; pair it with NotNil
// when the property is required.
func ChildValidator[C any](child *Validator[C]) PropertyValidator {
	if child == nil {
		panic("validator: ChildValidator requires a validator")
	}
	return &childValidator[C]{child: child}
}

type childValidator[C any] struct {
	child *Validator[C]
}

func (c *childValidator[C]) Name() string { return "child" }

// Child returns the nested validator.
func (c *childValidator[C]) Child() *Validator[C] { return c.child }

func (c *childValidator[C]) Validate(ctx *PropertyContext) ([]Failure, error) {
	value, present, err := valueAs[C](ctx)
	if err != nil {
		return nil, err
	}
	if !present || isNil(value) {
		return nil, nil
	}
	return c.child.run(childContext(ctx, value, ctx.Chain.Child(ctx.PropertyName)))
}

// ChildCollectionValidator validates every element of a slice property with
// child, reporting element failures as Property[i].Member. Nil elements are
// skipped.
func ChildCollectionValidator[C any](child *Validator[C]) PropertyValidator {
	if child == nil {
		panic("validator: ChildCollectionValidator requires a validator")
	}
	return &collectionValidator[C]{child: child}
}

type collectionValidator[C any] struct {
	child *Validator[C]
}

func (c *collectionValidator[C]) Name() string { return "collection" }

// Child returns the element validator.
func (c *collectionValidator[C]) Child() *Validator[C] { return c.child }

func (c *collectionValidator[C]) Validate(ctx *PropertyContext) ([]Failure, error) {
	if ctx.PropertyValue == nil {
		return nil, nil
	}
	items, ok := ctx.PropertyValue.([]C)
	if !ok {
		return nil, fmt.Errorf("%w: %s holds %T, expected %s",
			ErrTypeMismatch, ctx.PropertyPath, ctx.PropertyValue, reflect.TypeFor[[]C]())
	}

	var failures []Failure
	for i, item := range items {
		if isNil(item) {
			continue
		}
		chain := ctx.Chain.Child(ctx.PropertyName)
		chain.AddIndexer(i)
		produced, err := c.child.run(childContext(ctx, item, chain))
		if err != nil {
			return nil, err
		}
		failures = append(failures, produced...)
	}
	return failures, nil
}

func childContext[C any](ctx *PropertyContext, value C, chain *PropertyChain) *ValidationContext[C] {
	opts := []ContextOption{WithContext(ctx.Context), WithChain(chain), WithLocale(ctx.Locale)}
	if ctx.Selector != nil {
		opts = append(opts, WithSelector(ctx.Selector))
	}
	return NewContext(value, opts...)
}
