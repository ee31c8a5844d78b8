package validator

import "unicode/utf8"

// Length checks that a string has between min and max characters inclusive.
// A negative max means no upper bound and behaves as MinLength(min).
// Length counts runes, not bytes.
func Length(min, max int) *Check {
	if max < 0 {
		return MinLength(min)
	}
	return lengthCheck("length",
		"'{PropertyName}' must be between {MinLength} and {MaxLength} characters. You entered {TotalLength} characters.",
		min, max)
}

// MinLength checks that a string has at least min characters.
func MinLength(min int) *Check {
	return lengthCheck("min_length",
		"'{PropertyName}' must be at least {MinLength} characters. You entered {TotalLength} characters.",
		min, -1)
}

// MaxLength checks that a string has at most max characters.
func MaxLength(max int) *Check {
	return lengthCheck("max_length",
		"'{PropertyName}' must be {MaxLength} characters or fewer. You entered {TotalLength} characters.",
		0, max)
}

// ExactLength checks that a string has exactly n characters.
func ExactLength(n int) *Check {
	return lengthCheck("exact_length",
		"'{PropertyName}' must be {MaxLength} characters in length. You entered {TotalLength} characters.",
		n, n)
}

func lengthCheck(code, message string, min, max int) *Check {
	c := typedCheck(code, message, func(ctx *PropertyContext, value string) bool {
		n := utf8.RuneCountInString(value)
		ctx.MessageFormatter().AppendArgument("TotalLength", n)
		return n >= min && (max < 0 || n <= max)
	})
	c.WithArg("MinLength", min)
	if max >= 0 {
		c.WithArg("MaxLength", max)
	}
	return c
}
