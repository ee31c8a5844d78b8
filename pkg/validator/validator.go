package validator

import (
	"context"
	"log/slog"
	"reflect"
	"sync/atomic"
	"time"

	"github.com/dmitrymomot/rulekit/pkg/i18n"
	"github.com/dmitrymomot/rulekit/pkg/logger"
)

type settings struct {
	cascade     CascadeMode
	displayName DisplayNameResolver
	logger      *slog.Logger
	catalog     Catalog
	locale      string
}

// Option configures a Validator.
type Option func(*settings)

// WithCascadeMode sets the cascade mode of rules that do not set their own.
func WithCascadeMode(mode CascadeMode) Option {
	return func(s *settings) { s.cascade = mode }
}

// WithDisplayNameResolver replaces the function deriving display names from
// member names. Nil is ignored.
func WithDisplayNameResolver(fn DisplayNameResolver) Option {
	return func(s *settings) {
		if fn != nil {
			s.displayName = fn
		}
	}
}

// WithLogger sets the logger. Without it the validator does not log.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l.With(logger.Component("validator"))
		}
	}
}

// WithCatalog sets the catalog used to localize stock messages and messages
// declared with RuleBuilder.WithMessageKey.
func WithCatalog(c Catalog) Option {
	return func(s *settings) { s.catalog = c }
}

// WithDefaultLocale sets the locale used when the validation context has none.
func WithDefaultLocale(locale string) Option {
	return func(s *settings) { s.locale = locale }
}

// WithOptions applies values loaded with OptionsFromEnv.
func WithOptions(o Options) Option {
	return func(s *settings) {
		s.cascade = o.CascadeMode
		if o.DefaultLocale != "" {
			s.locale = o.DefaultLocale
		}
	}
}

// Validator validates instances of T against an ordered set of rules.
//
// Rules are declared first, from a single goroutine, and the validator seals
// itself on its first validation. A sealed validator is safe for concurrent use.
type Validator[T any] struct {
	rules    []Rule[T]
	settings *settings
	sealed   atomic.Bool
}

// New creates an empty validator.
func New[T any](opts ...Option) *Validator[T] {
	s := &settings{
		cascade:     CascadeContinue,
		displayName: SplitWords,
		logger:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return &Validator[T]{settings: s}
}

// RuleFor declares a rule for the property identified by name and read by
// accessor, and returns the builder used to attach checks to it.
//
//	v := validator.New[Customer]()
//	validator.RuleFor(v, "Surname", func(c Customer) string { return c.Surname }).
//		NotEmpty().
//		Must(validator.MaxLength(50))
func RuleFor[T, P any](v *Validator[T], name string, accessor func(T) P) *RuleBuilder[T, P] {
	if accessor == nil {
		panic("validator: RuleFor requires an accessor")
	}
	rule := NewPropertyRule(name, func(instance T) any { return accessor(instance) })
	v.AddRule(rule)
	return &RuleBuilder[T, P]{validator: v, rule: rule}
}

// AddRule registers a rule after the existing ones.
func (v *Validator[T]) AddRule(rule Rule[T]) {
	v.ensureOpen()
	if rule == nil {
		panic("validator: cannot add a nil rule")
	}
	if pr, ok := rule.(*PropertyRule[T]); ok && pr.settings == nil {
		pr.settings = v.settings
	}
	v.rules = append(v.rules, rule)
}

// Custom registers a whole-object rule. fn returns nil when the instance is valid.
//
// The failure is reported exactly as returned: inside a child validator its
// PropertyName is not prefixed with the parent path. Use CustomContext and
// ctx.PropertyChain().BuildPropertyName(name) for a nested path.
func (v *Validator[T]) Custom(fn CustomFunc[T]) {
	if fn == nil {
		panic("validator: Custom requires a function")
	}
	v.AddRule(newDelegateRule(func(instance T, _ *ValidationContext[T]) *Failure {
		return fn(instance)
	}))
}

// CustomContext registers a whole-object rule that also receives the context.
// As with Custom, the returned failure is reported unchanged.
func (v *Validator[T]) CustomContext(fn CustomContextFunc[T]) {
	if fn == nil {
		panic("validator: CustomContext requires a function")
	}
	v.AddRule(newDelegateRule(fn))
}

// Validate validates instance with an empty property chain and every rule
// selected.
func (v *Validator[T]) Validate(instance T) (*Result, error) {
	return v.ValidateContext(NewContext(instance))
}

// ValidateWith validates instance using the locale stored in ctx by
// i18n.WithLocale; opts may override it and set a chain or selector.
// ctx is also handed to the logger.
func (v *Validator[T]) ValidateWith(ctx context.Context, instance T, opts ...ContextOption) (*Result, error) {
	base := []ContextOption{WithContext(ctx)}
	if locale := i18n.LocaleFromContext(ctx); locale != "" {
		base = append(base, WithLocale(locale))
	}
	return v.ValidateContext(NewContext(instance, append(base, opts...)...))
}

// ValidateContext runs every rule against ctx and merges the failures in
// rule declaration order. A locale negotiated from WithAcceptLanguage is
// stored on ctx. A returned error is a configuration error; the
// result is nil in that case.
func (v *Validator[T]) ValidateContext(ctx *ValidationContext[T]) (*Result, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if isNil(ctx.InstanceToValidate()) {
		return nil, ErrNilInstance
	}

	if ctx.locale == "" && ctx.accept != "" {
		ctx.locale = v.negotiateLocale(ctx.accept)
	}

	start := time.Now()
	failures, err := v.run(ctx)
	if err != nil {
		v.settings.logger.WarnContext(ctx.Context(), "validation aborted", logger.Error(err))
		return nil, err
	}

	v.settings.logger.DebugContext(ctx.Context(), "validation completed",
		logger.Property(ctx.PropertyChain().String()),
		logger.FailureCount(len(failures)),
		logger.Locale(ctx.locale),
		logger.Duration(time.Since(start)),
	)
	return NewResult(failures), nil
}

// languageSet is implemented by catalogs that list their languages, such as
// *i18n.Translator.
type languageSet interface {
	SupportedLanguages() []string
	DefaultLanguage() string
}

// negotiateLocale picks the catalog language best matching an
// Accept-Language header, or "" when the catalog cannot tell.
func (v *Validator[T]) negotiateLocale(header string) string {
	langs, ok := v.settings.catalog.(languageSet)
	if !ok {
		return ""
	}
	fallback := v.settings.locale
	if fallback == "" {
		fallback = langs.DefaultLanguage()
	}
	return i18n.ParseAcceptLanguage(header, langs.SupportedLanguages(), fallback)
}

// Assert validates instance and returns the failures as an error when it is
// invalid. Configuration errors are returned unchanged.
func (v *Validator[T]) Assert(instance T) error {
	res, err := v.Validate(instance)
	if err != nil {
		return err
	}
	return res.Err()
}

// Rules returns the registered rules in declaration order.
func (v *Validator[T]) Rules() []Rule[T] {
	out := make([]Rule[T], len(v.rules))
	copy(out, v.rules)
	return out
}

func (v *Validator[T]) run(ctx *ValidationContext[T]) ([]Failure, error) {
	v.sealed.Store(true)

	var failures []Failure
	for _, rule := range v.rules {
		produced, err := rule.Validate(ctx)
		if err != nil {
			return nil, err
		}
		failures = append(failures, produced...)
	}
	return failures, nil
}

func (v *Validator[T]) ensureOpen() {
	if v.sealed.Load() {
		panic(ErrValidatorSealed)
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
