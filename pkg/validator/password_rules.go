package validator

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// PasswordPolicy configures StrongPassword.
type PasswordPolicy struct {
	MinLength        int
	MaxLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireDigits    bool
	RequireSpecial   bool
	// MinCharClasses is the number of distinct classes (upper, lower, digit,
	// special) the password must use.
	MinCharClasses int
}

// DefaultPasswordPolicy requires 8 to 128 characters with upper and lower
// case letters, digits and special characters.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength:        8,
		MaxLength:        128,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireDigits:    true,
		RequireSpecial:   true,
		MinCharClasses:   3,
	}
}

// StrongPassword checks a password against policy.
func StrongPassword(policy PasswordPolicy) *Check {
	return typedCheck("password_strength",
		"'{PropertyName}' must be {MinLength}-{MaxLength} characters and use at least {MinCharClasses} of: upper case, lower case, digits, special characters.",
		func(_ *PropertyContext, v string) bool { return policy.accepts(v) }).
		WithArg("MinLength", policy.MinLength).
		WithArg("MaxLength", policy.MaxLength).
		WithArg("MinCharClasses", policy.MinCharClasses)
}

func (p PasswordPolicy) accepts(v string) bool {
	n := utf8.RuneCountInString(v)
	if n < p.MinLength || (p.MaxLength > 0 && n > p.MaxLength) {
		return false
	}

	var upper, lower, digit, special bool
	for _, r := range v {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}
	if (p.RequireUppercase && !upper) || (p.RequireLowercase && !lower) ||
		(p.RequireDigits && !digit) || (p.RequireSpecial && !special) {
		return false
	}

	classes := 0
	for _, has := range []bool{upper, lower, digit, special} {
		if has {
			classes++
		}
	}
	return classes >= p.MinCharClasses
}

// Frequently leaked passwords, compared case-insensitively.
var commonPasswords = map[string]struct{}{
	"password": {}, "password1": {}, "password123": {}, "123456": {}, "12345678": {},
	"123456789": {}, "1234567890": {}, "qwerty": {}, "qwerty123": {}, "qwertyuiop": {},
	"abc123": {}, "111111": {}, "000000": {}, "123123": {}, "654321": {},
	"letmein": {}, "welcome": {}, "monkey": {}, "dragon": {}, "sunshine": {},
	"iloveyou": {}, "princess": {}, "football": {}, "baseball": {}, "admin": {},
	"admin123": {}, "administrator": {}, "root": {}, "master": {}, "secret": {},
	"trustno1": {}, "1q2w3e4r": {}, "1qaz2wsx": {}, "zaq12wsx": {}, "abcd1234": {},
}

// NotCommonPassword rejects passwords from a list of frequently leaked ones.
func NotCommonPassword() *Check {
	return typedCheck("password_common", "'{PropertyName}' is too common, please choose a different one.",
		func(_ *PropertyContext, v string) bool {
			_, common := commonPasswords[strings.ToLower(v)]
			return !common
		})
}

// NoRepeatingChars rejects strings that repeat one character more than max
// times in a row.
func NoRepeatingChars(max int) *Check {
	return typedCheck("repeating_chars", "'{PropertyName}' must not repeat a character more than {MaxRepeats} times in a row.",
		func(_ *PropertyContext, v string) bool {
			return longestRun(v, func(prev, r rune) bool { return r == prev }) <= max
		}).
		WithArg("MaxRepeats", max)
}

// NoSequentialChars rejects runs longer than max of consecutive code points
// such as "abcd" or "4321".
func NoSequentialChars(max int) *Check {
	return typedCheck("sequential_chars", "'{PropertyName}' must not contain more than {MaxSequential} sequential characters.",
		func(_ *PropertyContext, v string) bool {
			return longestRun(v, func(prev, r rune) bool { return r == prev+1 || r == prev-1 }) <= max
		}).
		WithArg("MaxSequential", max)
}

// longestRun returns the length of the longest run of runes where each rune
// continues the previous one according to next.
func longestRun(v string, next func(prev, r rune) bool) int {
	longest, current := 0, 0
	var prev rune
	for i, r := range []rune(v) {
		if i > 0 && next(prev, r) {
			current++
		} else {
			current = 1
		}
		longest = max(longest, current)
		prev = r
	}
	return longest
}
