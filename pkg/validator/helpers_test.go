package validator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

// runCheck validates value with pv as property "Field" and fails the test on
// a configuration error.
func runCheck(t *testing.T, pv validator.PropertyValidator, value any) []validator.Failure {
	t.Helper()
	failures, err := checkErr(pv, value)
	require.NoError(t, err)
	return failures
}

func checkErr(pv validator.PropertyValidator, value any) ([]validator.Failure, error) {
	return pv.Validate(&validator.PropertyContext{
		PropertyName:  "Field",
		DisplayName:   "Field",
		PropertyPath:  "Field",
		PropertyValue: value,
	})
}

// messageOf returns the message of the single failure produced by pv.
func messageOf(t *testing.T, pv validator.PropertyValidator, value any) string {
	t.Helper()
	failures := runCheck(t, pv, value)
	require.Len(t, failures, 1)
	return failures[0].Message
}

type checkCase struct {
	name  string
	check *validator.Check
	value any
	valid bool
}

func runCheckCases(t *testing.T, cases []checkCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			failures := runCheck(t, tc.check, tc.value)
			if tc.valid {
				require.Empty(t, failures)
				return
			}
			require.Len(t, failures, 1)
			require.Equal(t, "Field", failures[0].PropertyName)
			require.Equal(t, tc.check.Name(), failures[0].Code)
			require.Equal(t, tc.value, failures[0].AttemptedValue)
		})
	}
}
