package validator

import "errors"

// Configuration errors. They signal misuse of the engine rather than invalid
// data and always abort the validation call that produced them.
var (
	// ErrNilInstance is returned when Validate receives a nil instance.
	ErrNilInstance = errors.New("validator: cannot validate a nil instance")

	// ErrNilContext is returned when ValidateContext receives a nil context.
	ErrNilContext = errors.New("validator: cannot validate with a nil context")

	// ErrPropertyNameUnknown is returned when a property rule has neither a
	// member name nor a custom display name.
	ErrPropertyNameUnknown = errors.New("validator: property name could not be determined, use WithName to set one")

	// ErrTypeMismatch is returned when a typed check receives a property value
	// of a different dynamic type.
	ErrTypeMismatch = errors.New("validator: property value type does not match check")

	// ErrInvalidTag is returned when a tag expression cannot be evaluated.
	ErrInvalidTag = errors.New("validator: invalid tag expression")

	// ErrValidatorSealed is the panic value used when rules are declared on a
	// validator that has already run.
	ErrValidatorSealed = errors.New("validator: rules cannot be declared after the first validation")

	// ErrInvalidCascadeMode is returned when a cascade mode cannot be parsed.
	ErrInvalidCascadeMode = errors.New("validator: invalid cascade mode")
)
