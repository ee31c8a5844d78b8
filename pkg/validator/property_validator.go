package validator

import (
	"cmp"
	"context"
	"fmt"
	"reflect"
)

// PropertyValidator is a single assertion about a property value.
// Validate returns at most one failure for the stock checks; a returned error
// is a configuration error and aborts the whole validation.
type PropertyValidator interface {
	Name() string
	Validate(ctx *PropertyContext) ([]Failure, error)
}

// PropertyContext is what a PropertyValidator sees for one invocation.
type PropertyContext struct {
	// Context is the context.Context of the enclosing validation.
	Context context.Context
	// Instance is the object that owns the property.
	Instance any
	// PropertyName is the path segment of the property (member name or
	// custom name), used to derive child chains.
	PropertyName string
	// DisplayName is the human readable name used in messages.
	DisplayName string
	// PropertyPath is the full dotted path reported in failures.
	PropertyPath string
	// PropertyValue is the resolved property value.
	PropertyValue any
	// Chain is the property chain of the enclosing validation.
	Chain *PropertyChain
	// Selector is the selector of the enclosing validation.
	Selector Selector
	// Locale selects the message language.
	Locale string
	// Catalog resolves stock and keyed messages, may be nil.
	Catalog Catalog
	// Formatter collects placeholder values for this invocation only.
	Formatter *MessageFormatter
}

// MessageFormatter returns the invocation formatter, creating it on first use.
func (ctx *PropertyContext) MessageFormatter() *MessageFormatter {
	if ctx.Formatter == nil {
		ctx.Formatter = NewMessageFormatter()
	}
	return ctx.Formatter
}

// PredicateFunc decides whether the property in ctx is valid. A non-nil
// error reports a configuration problem, not invalid data.
type PredicateFunc func(ctx *PropertyContext) (bool, error)

type namedArg struct {
	name  string
	value any
}

// Check is the stock PropertyValidator: a predicate plus everything needed to
// describe its failure. Checks are configured while rules are declared and
// are read-only afterwards, so one Check may serve concurrent validations.
type Check struct {
	code       string
	message    string
	predicate  PredicateFunc
	source     MessageSource
	args       []namedArg
	formatArgs []func(instance any) any
	state      func(instance any) any
}

// NewCheck creates a check identified by code with a default message template.
func NewCheck(code, message string, predicate PredicateFunc) *Check {
	if predicate == nil {
		panic("validator: NewCheck requires a predicate")
	}
	return &Check{code: code, message: message, predicate: predicate}
}

// Name returns the check code.
func (c *Check) Name() string { return c.code }

// DefaultMessage returns the template used when no message source is set.
func (c *Check) DefaultMessage() string { return c.message }

// WithMessage replaces the message with a literal template.
func (c *Check) WithMessage(template string) *Check {
	c.source = Literal(template)
	return c
}

// WithMessageSource replaces the message source.
func (c *Check) WithMessageSource(src MessageSource) *Check {
	c.source = src
	return c
}

// WithCode overrides the code reported in failures.
func (c *Check) WithCode(code string) *Check {
	c.code = code
	return c
}

// WithArg records a named placeholder value available to the template.
func (c *Check) WithArg(name string, value any) *Check {
	c.args = append(c.args, namedArg{name: name, value: value})
	return c
}

// WithMessageArgs appends positional placeholder values ({0}, {1}, ...).
// Each function is evaluated against the instance when a failure is built.
func (c *Check) WithMessageArgs(fns ...func(instance any) any) *Check {
	for _, fn := range fns {
		if fn != nil {
			c.formatArgs = append(c.formatArgs, fn)
		}
	}
	return c
}

// WithState attaches a custom state provider evaluated against the instance
// when a failure is built.
func (c *Check) WithState(fn func(instance any) any) *Check {
	c.state = fn
	return c
}

// Validate implements PropertyValidator.
func (c *Check) Validate(ctx *PropertyContext) ([]Failure, error) {
	ctx.MessageFormatter().AppendPropertyName(ctx.DisplayName)

	ok, err := c.predicate(ctx)
	if err != nil {
		return nil, err
	}
	if ok {
		return nil, nil
	}
	return []Failure{c.failure(ctx)}, nil
}

func (c *Check) failure(ctx *PropertyContext) Failure {
	f := ctx.MessageFormatter()
	// Values recorded by the predicate take precedence over declared ones.
	for _, arg := range c.args {
		if _, ok := f.Value(arg.name); !ok {
			f.AppendArgument(arg.name, arg.value)
		}
	}
	if _, ok := f.Value(PlaceholderPropertyValue); !ok {
		f.AppendPropertyValue(ctx.PropertyValue)
	}
	if len(c.formatArgs) > 0 {
		values := make([]any, len(c.formatArgs))
		for i, fn := range c.formatArgs {
			values[i] = fn(ctx.Instance)
		}
		f.AppendAdditionalArguments(values...)
	}

	failure := Failure{
		PropertyName:   ctx.PropertyPath,
		Message:        f.BuildMessage(c.template(ctx)),
		AttemptedValue: ctx.PropertyValue,
		Code:           c.code,
	}
	if c.state != nil {
		failure.CustomState = c.state(ctx.Instance)
	}
	return failure
}

func (c *Check) template(ctx *PropertyContext) string {
	if c.source != nil {
		return c.source.Template(ctx.Locale)
	}
	if ctx.Catalog != nil {
		if tmpl, ok := ctx.Catalog.Lookup(ctx.Locale, MessageKey(c.code)); ok {
			return tmpl
		}
	}
	return c.message
}

// valueAs converts the property value to P, dereferencing *P. present is
// false for a nil value or a nil pointer; most checks treat an absent value
// as valid and leave presence to NotNil and NotEmpty.
//
// Values of a named type (type Email string) and numbers of another width
// (an int64 field checked against an int bound) are converted when the
// conversion keeps the value intact. Anything else is ErrTypeMismatch.
func valueAs[P any](ctx *PropertyContext) (value P, present bool, err error) {
	switch v := ctx.PropertyValue.(type) {
	case nil:
		return value, false, nil
	case P:
		return v, true, nil
	case *P:
		if v == nil {
			return value, false, nil
		}
		return *v, true, nil
	}
	if value, present, ok := convertValue[P](ctx.PropertyValue); ok {
		return value, present, nil
	}
	return value, false, fmt.Errorf("%w: %s holds %T, expected %s",
		ErrTypeMismatch, ctx.PropertyPath, ctx.PropertyValue, reflect.TypeFor[P]())
}

// convertValue reads v, or what v points to, as P. ok is false when the
// types are unrelated or the conversion would change the value.
func convertValue[P any](v any) (value P, present, ok bool) {
	rv := reflect.ValueOf(v)
	from := rv.Type()
	if from.Kind() == reflect.Pointer {
		from = from.Elem()
	}
	target := reflect.TypeFor[P]()
	if !from.ConvertibleTo(target) {
		return value, false, false
	}
	sameKind := from.Kind() == target.Kind()
	if !sameKind && (!isNumeric(from.Kind()) || !isNumeric(target.Kind())) {
		return value, false, false
	}

	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return value, false, true
		}
		rv = rv.Elem()
	}
	out := rv.Convert(target)
	if !sameKind && !lossless(rv, out) {
		return value, false, false
	}
	return out.Interface().(P), true, true
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// lossless reports whether out holds the same number as in.
func lossless(in, out reflect.Value) bool {
	return sign(in) == sign(out) && out.Convert(in.Type()).Equal(in)
}

func sign(v reflect.Value) int {
	switch {
	case v.CanInt():
		return cmp.Compare(v.Int(), 0)
	case v.CanUint():
		return cmp.Compare(v.Uint(), 0)
	case v.CanFloat():
		return cmp.Compare(v.Float(), 0)
	}
	return 0
}

// typedCheck builds a check whose predicate receives the value as P.
// Absent values pass.
func typedCheck[P any](code, message string, fn func(ctx *PropertyContext, value P) bool) *Check {
	return NewCheck(code, message, func(ctx *PropertyContext) (bool, error) {
		v, present, err := valueAs[P](ctx)
		if err != nil || !present {
			return err == nil, err
		}
		return fn(ctx, v), nil
	})
}
