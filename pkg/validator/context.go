package validator

import (
	"context"
	"slices"
)

// ValidationContext carries the instance under validation, the current
// property chain and the selector deciding which rules run.
// A context belongs to a single validation call.
type ValidationContext[T any] struct {
	ctx      context.Context
	instance T
	chain    *PropertyChain
	selector Selector
	locale   string
	accept   string
}

// ContextOption configures a ValidationContext.
type ContextOption func(*contextConfig)

type contextConfig struct {
	ctx      context.Context
	chain    *PropertyChain
	selector Selector
	locale   string
	accept   string
}

// WithChain sets the parent property chain, used when the instance is
// itself a nested property of a larger object.
func WithChain(chain *PropertyChain) ContextOption {
	return func(c *contextConfig) {
		if chain != nil {
			c.chain = chain
		}
	}
}

// WithContext attaches ctx to the validation. It is passed to the logger so
// context-aware handlers can add request-scoped attributes.
func WithContext(ctx context.Context) ContextOption {
	return func(c *contextConfig) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithSelector sets the rule selector.
func WithSelector(selector Selector) ContextOption {
	return func(c *contextConfig) {
		if selector != nil {
			c.selector = selector
		}
	}
}

// WithLocale sets the message locale.
func WithLocale(locale string) ContextOption {
	return func(c *contextConfig) {
		c.locale = locale
	}
}

// WithAcceptLanguage negotiates the message locale from an HTTP
// Accept-Language header against the languages of the validator's catalog.
// An explicit WithLocale wins. Catalogs that do not list their languages,
// unlike *i18n.Translator, ignore the header.
func WithAcceptLanguage(header string) ContextOption {
	return func(c *contextConfig) {
		c.accept = header
	}
}

// WithMembers restricts validation to the given property paths.
func WithMembers(paths ...string) ContextOption {
	return WithSelector(MemberNameSelector(paths...))
}

// NewContext creates a validation context for instance. Without options the
// chain is empty and every rule runs.
func NewContext[T any](instance T, opts ...ContextOption) *ValidationContext[T] {
	cfg := contextConfig{ctx: context.Background(), selector: DefaultSelector()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.chain == nil {
		cfg.chain = NewPropertyChain()
	}
	return &ValidationContext[T]{
		ctx:      cfg.ctx,
		instance: instance,
		chain:    cfg.chain,
		selector: cfg.selector,
		locale:   cfg.locale,
		accept:   cfg.accept,
	}
}

// Context returns the attached context.Context, never nil.
func (c *ValidationContext[T]) Context() context.Context { return c.ctx }

// InstanceToValidate returns the instance under validation.
func (c *ValidationContext[T]) InstanceToValidate() T { return c.instance }

// PropertyChain returns the chain of the enclosing properties.
func (c *ValidationContext[T]) PropertyChain() *PropertyChain { return c.chain }

// Selector returns the rule selector.
func (c *ValidationContext[T]) Selector() Selector { return c.selector }

// Locale returns the message locale, empty when unset.
func (c *ValidationContext[T]) Locale() string { return c.locale }

// Selector decides whether a rule runs for the property at path.
type Selector interface {
	CanExecute(rule RuleInfo, path string) bool
}

// SelectorFunc adapts a function to Selector.
type SelectorFunc func(rule RuleInfo, path string) bool

func (f SelectorFunc) CanExecute(rule RuleInfo, path string) bool { return f(rule, path) }

type defaultSelector struct{}

func (defaultSelector) CanExecute(RuleInfo, string) bool { return true }

// DefaultSelector runs every rule.
func DefaultSelector() Selector { return defaultSelector{} }

// MemberNameSelector runs only rules whose path is one of paths. A selected
// path also admits the properties nested below it, so "Address" admits
// "Address.Line1" and "Orders" admits "Orders[0].Total".
func MemberNameSelector(paths ...string) Selector {
	return &memberNameSelector{paths: slices.Clone(paths)}
}

type memberNameSelector struct {
	paths []string
}

func (s *memberNameSelector) CanExecute(_ RuleInfo, path string) bool {
	for _, p := range s.paths {
		if p == path || isNestedPath(p, path) || isNestedPath(path, p) {
			return true
		}
	}
	return false
}

// isNestedPath reports whether path lies below parent.
func isNestedPath(parent, path string) bool {
	if len(path) <= len(parent) || path[:len(parent)] != parent {
		return false
	}
	next := path[len(parent)]
	return next == '.' || next == '['
}
