// Package validator provides declarative, strongly typed validation of Go
// values. Rules are declared once per type on a Validator and evaluated
// against any number of instances, producing an ordered list of failures
// with human readable, optionally localized messages.
//
// # Architecture
//
// A Validator[T] owns an ordered list of rules. A PropertyRule reads one
// property through an accessor and runs its checks (PropertyValidator) in
// declaration order; whole-object rules are added with Custom and
// CustomContext. Each check describes its failure with a code, a message
// template and named placeholders.
//
// Core building blocks:
//   - Validator and RuleFor: rule declaration and execution.
//   - RuleBuilder: attaches checks and customises the last one.
//   - Check: the stock PropertyValidator, a predicate plus message metadata.
//   - ValidationContext: instance, PropertyChain, Selector and locale of one run.
//   - Result and Failures: the outcome, usable as an error through Assert.
//   - MessageFormatter: {Placeholder} substitution.
//
// Check families live in their own files (string_rules.go,
// comparable_rules.go, format_rules.go, ...).
//
// # Usage
//
//	v := validator.New[Customer]()
//	validator.RuleFor(v, "Surname", func(c Customer) string { return c.Surname }).
//	    NotEmpty().
//	    Must(validator.MaxLength(50))
//	validator.RuleFor(v, "Discount", func(c Customer) float64 { return c.Discount }).
//	    Must(validator.GreaterThan(0.0)).
//	    When(func(c Customer) bool { return c.HasDiscount })
//	validator.RuleFor(v, "Address", func(c Customer) *Address { return c.Address }).
//	    SetChild(addressValidator)
//
//	res, err := v.Validate(customer)
//	if err != nil {
//	    // configuration error, e.g. ErrTypeMismatch
//	}
//	for _, f := range res.Failures() {
//	    fmt.Println(f.PropertyName, f.Message)
//	}
//
// # Cascade and selection
//
// With CascadeStopOnFirstFailure a rule stops at its first failing check;
// other rules are unaffected. WithMembers and WithSelector restrict which
// property rules run. Nested paths such as "Address.Line1" or
// "Orders[0].Total" select into child validators.
//
// # Messages
//
// Templates use {PropertyName}, {PropertyValue}, check specific names such as
// {ComparisonValue} or {MinLength}, and positional {0}, {1} from
// WithMessageArgs. With a Catalog set by WithCatalog, stock messages are read
// under MessageKey(code) for the locale of the run. DefaultCatalog bundles
// English, German, French and Spanish translations built on package i18n,
// and LoadCatalog reads YAML or JSON catalogs from disk. WithAcceptLanguage
// picks the locale from an HTTP Accept-Language header.
//
// # Concurrency
//
// Declare rules from one goroutine. A validator seals itself on its first
// validation; declaring rules afterwards panics with ErrValidatorSealed, and
// a sealed validator may be used concurrently.
package validator
