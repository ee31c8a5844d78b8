package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

func TestDescriptor(t *testing.T) {
	v := validator.New[customer]()
	validator.RuleFor(v, "Name", func(c customer) string { return c.Name }).
		NotEmpty().
		Must(validator.MaxLength(50))
	validator.RuleFor(v, "EmailAddress", func(c customer) string { return c.Email }).Must(validator.Email())
	validator.RuleFor(v, "Name", func(c customer) string { return c.Name }).
		Must(validator.Matches(`^[A-Z]`)).
		WithName("Customer name")
	v.Custom(func(customer) *validator.Failure { return nil })

	d := v.Descriptor()

	t.Run("members in declaration order", func(t *testing.T) {
		assert.Equal(t, []string{"Name", "EmailAddress"}, d.Members())
	})

	t.Run("display name of the first rule", func(t *testing.T) {
		assert.Equal(t, "Name", d.NameFor("Name"))
		assert.Equal(t, "Email Address", d.NameFor("EmailAddress"))
		assert.Empty(t, d.NameFor("Age"))
	})

	t.Run("checks across rules", func(t *testing.T) {
		assert.Equal(t, []string{"not_empty", "max_length", "matches"}, d.CheckNames("Name"))
		assert.Len(t, d.ValidatorsFor("EmailAddress"), 1)
		assert.Empty(t, d.ValidatorsFor("Age"))
	})

	t.Run("rules include whole object rules", func(t *testing.T) {
		rules := d.Rules()
		require.Len(t, rules, 4)
		assert.Empty(t, rules[3].PropertyName())
	})

	t.Run("returned slices are copies", func(t *testing.T) {
		members := d.Members()
		members[0] = "changed"
		assert.Equal(t, "Name", d.Members()[0])
	})

	t.Run("describing does not seal", func(t *testing.T) {
		assert.NotPanics(t, func() {
			validator.RuleFor(v, "Age", func(c customer) int { return c.Age }).Must(validator.GreaterThan(0))
		})
		assert.Equal(t, []string{"greater_than"}, v.Descriptor().CheckNames("Age"))
	})
}
