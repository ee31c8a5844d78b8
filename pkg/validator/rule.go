package validator

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/rulekit/pkg/logger"
)

// CascadeMode controls whether the remaining checks of a rule run after one
// of them fails.
type CascadeMode int

const (
	// CascadeContinue runs every check of the rule.
	CascadeContinue CascadeMode = iota
	// CascadeStopOnFirstFailure skips the remaining checks of the rule once
	// one has failed.
	CascadeStopOnFirstFailure
)

func (m CascadeMode) String() string {
	switch m {
	case CascadeContinue:
		return "continue"
	case CascadeStopOnFirstFailure:
		return "stop"
	default:
		return fmt.Sprintf("CascadeMode(%d)", int(m))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m CascadeMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting "continue" and
// "stop" (or "stop_on_first_failure").
func (m *CascadeMode) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "continue":
		*m = CascadeContinue
	case "stop", "stop_on_first_failure", "stoponfirstfailure":
		*m = CascadeStopOnFirstFailure
	default:
		return fmt.Errorf("%w: %q", ErrInvalidCascadeMode, string(text))
	}
	return nil
}

// RuleInfo is the read-only view of a rule used by selectors and descriptors.
type RuleInfo interface {
	// PropertyName returns the member name, or the custom name when the
	// member name is empty. Whole-object rules return "".
	PropertyName() string
	// DisplayName returns the name used in messages.
	DisplayName() string
	// Validators returns the checks of the rule in declaration order.
	Validators() []PropertyValidator
}

// Rule is a unit of validation owned by a Validator.
type Rule[T any] interface {
	RuleInfo
	Validate(ctx *ValidationContext[T]) ([]Failure, error)
}

// PropertyRule binds a property accessor to an ordered list of checks.
type PropertyRule[T any] struct {
	memberName string
	customName string
	accessor   func(T) any
	validators []PropertyValidator
	current    int
	cascade    *CascadeMode
	onFailure  func(T)
	settings   *settings
}

// NewPropertyRule creates a rule for the member identified by memberName.
// memberName may be empty when a custom name is set with SetDisplayName.
func NewPropertyRule[T any](memberName string, accessor func(T) any) *PropertyRule[T] {
	if accessor == nil {
		panic("validator: property rule requires an accessor")
	}
	return &PropertyRule[T]{
		memberName: memberName,
		accessor:   accessor,
		current:    -1,
	}
}

// MemberName returns the identifier the rule was declared with.
func (r *PropertyRule[T]) MemberName() string { return r.memberName }

// PropertyName implements RuleInfo.
func (r *PropertyRule[T]) PropertyName() string {
	if r.memberName != "" {
		return r.memberName
	}
	return r.customName
}

// DisplayName implements RuleInfo.
func (r *PropertyRule[T]) DisplayName() string {
	if r.customName != "" {
		return r.customName
	}
	return r.resolver()(r.memberName)
}

// SetDisplayName overrides the display name.
func (r *PropertyRule[T]) SetDisplayName(name string) { r.customName = name }

// Validators implements RuleInfo. The returned slice must not be modified.
func (r *PropertyRule[T]) Validators() []PropertyValidator { return r.validators }

// CurrentValidator returns the most recently added check, or nil.
func (r *PropertyRule[T]) CurrentValidator() PropertyValidator {
	if r.current < 0 {
		return nil
	}
	return r.validators[r.current]
}

// AddValidator appends a check and makes it current.
func (r *PropertyRule[T]) AddValidator(pv PropertyValidator) {
	if pv == nil {
		panic("validator: cannot add a nil property validator")
	}
	r.validators = append(r.validators, pv)
	r.current = len(r.validators) - 1
}

// ReplaceCurrentValidator swaps the current check for pv at the same position.
func (r *PropertyRule[T]) ReplaceCurrentValidator(pv PropertyValidator) {
	if pv == nil {
		panic("validator: cannot replace with a nil property validator")
	}
	if r.current < 0 {
		panic("validator: no current validator to replace")
	}
	r.validators[r.current] = pv
}

// SetCascadeMode overrides the validator-wide cascade mode for this rule.
func (r *PropertyRule[T]) SetCascadeMode(mode CascadeMode) { r.cascade = &mode }

// CascadeMode returns the effective cascade mode.
func (r *PropertyRule[T]) CascadeMode() CascadeMode {
	if r.cascade != nil {
		return *r.cascade
	}
	if r.settings != nil {
		return r.settings.cascade
	}
	return CascadeContinue
}

// OnFailure sets a hook called once per evaluation when any check failed.
func (r *PropertyRule[T]) OnFailure(fn func(T)) { r.onFailure = fn }

// Validate implements Rule.
func (r *PropertyRule[T]) Validate(ctx *ValidationContext[T]) ([]Failure, error) {
	if r.memberName == "" && r.customName == "" {
		return nil, ErrPropertyNameUnknown
	}

	segment := r.PropertyName()
	path := ctx.PropertyChain().BuildPropertyName(segment)
	log := r.logger()

	if !ctx.Selector().CanExecute(r, path) {
		log.DebugContext(ctx.Context(), "rule skipped by selector", logger.Property(path))
		return nil, nil
	}

	instance := ctx.InstanceToValidate()
	value := r.accessor(instance)
	display := r.DisplayName()
	cascade := r.CascadeMode()

	var failures []Failure
	for i, pv := range r.validators {
		pctx := &PropertyContext{
			Context:       ctx.Context(),
			Instance:      instance,
			PropertyName:  segment,
			DisplayName:   display,
			PropertyPath:  path,
			PropertyValue: value,
			Chain:         ctx.PropertyChain(),
			Selector:      ctx.Selector(),
			Locale:        r.locale(ctx),
			Catalog:       r.catalog(),
			Formatter:     NewMessageFormatter(),
		}

		produced, err := pv.Validate(pctx)
		if err != nil {
			return nil, err
		}
		failures = append(failures, produced...)

		if cascade == CascadeStopOnFirstFailure && len(produced) > 0 {
			if remaining := len(r.validators) - i - 1; remaining > 0 {
				log.DebugContext(ctx.Context(), "cascade stopped rule", logger.Property(path), logger.Rule(pv.Name()), slog.Int("skipped", remaining))
			}
			break
		}
	}

	if len(failures) > 0 && r.onFailure != nil {
		r.onFailure(instance)
	}
	return failures, nil
}

func (r *PropertyRule[T]) resolver() DisplayNameResolver {
	if r.settings != nil && r.settings.displayName != nil {
		return r.settings.displayName
	}
	return SplitWords
}

func (r *PropertyRule[T]) logger() *slog.Logger {
	if r.settings != nil {
		return r.settings.logger
	}
	return logger.Discard()
}

func (r *PropertyRule[T]) catalog() Catalog {
	if r.settings != nil {
		return r.settings.catalog
	}
	return nil
}

func (r *PropertyRule[T]) locale(ctx *ValidationContext[T]) string {
	if l := ctx.Locale(); l != "" {
		return l
	}
	if r.settings != nil {
		return r.settings.locale
	}
	return ""
}
