package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

type status string

func TestChoiceChecks(t *testing.T) {
	runCheckCases(t, []checkCase{
		{"one of", validator.OneOf("a", "b"), "a", true},
		{"not one of", validator.OneOf("a", "b"), "c", false},
		{"one of named type", validator.OneOf[status]("active", "closed"), status("closed"), true},
		{"none of", validator.NoneOf(1, 2), 3, true},
		{"in none of", validator.NoneOf(1, 2), 2, false},
		{"one of fold", validator.OneOfFold("Red", "Green"), "red", true},
		{"one of fold miss", validator.OneOfFold("Red", "Green"), "blue", false},
		{"absent", validator.OneOf("a"), nil, true},
	})
}

func TestChoiceMessages(t *testing.T) {
	assert.Equal(t, "'Field' must be one of: a, b.", messageOf(t, validator.OneOf("a", "b"), "c"))
	assert.Equal(t, "'Field' must not be one of: 1, 2.", messageOf(t, validator.NoneOf(1, 2), 1))
}

func TestOneOfCopiesValues(t *testing.T) {
	allowed := []string{"a", "b"}
	check := validator.OneOf(allowed...)
	allowed[0] = "z"

	assert.Empty(t, runCheck(t, check, "a"))
}
