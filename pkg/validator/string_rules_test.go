package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

func TestLengthChecks(t *testing.T) {
	text := "abc"
	var nilText *string

	runCheckCases(t, []checkCase{
		{"length within", validator.Length(2, 4), "abc", true},
		{"length lower bound", validator.Length(2, 4), "ab", true},
		{"length upper bound", validator.Length(2, 4), "abcd", true},
		{"length too short", validator.Length(2, 4), "a", false},
		{"length too long", validator.Length(2, 4), "abcde", false},
		{"length counts runes", validator.Length(3, 3), "héé", true},
		{"length absent", validator.Length(2, 4), nil, true},
		{"length nil pointer", validator.Length(2, 4), nilText, true},
		{"length pointer", validator.Length(2, 4), &text, true},
		{"unbounded length", validator.Length(2, -1), "a very long text", true},
		{"min length", validator.MinLength(3), "ab", false},
		{"max length", validator.MaxLength(2), "abc", false},
		{"exact length", validator.ExactLength(3), "abc", true},
		{"exact length mismatch", validator.ExactLength(3), "abcd", false},
	})
}

func TestLengthMessages(t *testing.T) {
	tests := []struct {
		name  string
		check *validator.Check
		value string
		want  string
	}{
		{"length", validator.Length(2, 4), "a", "'Field' must be between 2 and 4 characters. You entered 1 characters."},
		{"min length", validator.MinLength(3), "ab", "'Field' must be at least 3 characters. You entered 2 characters."},
		{"max length", validator.MaxLength(2), "abc", "'Field' must be 2 characters or fewer. You entered 3 characters."},
		{"exact length", validator.ExactLength(3), "ab", "'Field' must be 3 characters in length. You entered 2 characters."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, messageOf(t, tt.check, tt.value))
		})
	}
}

func TestLengthCodes(t *testing.T) {
	assert.Equal(t, "length", validator.Length(1, 2).Name())
	assert.Equal(t, "min_length", validator.Length(1, -1).Name())
	assert.Equal(t, "min_length", validator.MinLength(1).Name())
	assert.Equal(t, "max_length", validator.MaxLength(1).Name())
	assert.Equal(t, "exact_length", validator.ExactLength(1).Name())
}

func TestLengthTypeMismatch(t *testing.T) {
	_, err := checkErr(validator.MaxLength(2), 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, validator.ErrTypeMismatch)
	assert.Contains(t, err.Error(), "Field")
}
