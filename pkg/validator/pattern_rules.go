package validator

import (
	"net/mail"
	"regexp"
	"strings"
)

// Matches checks that a string matches pattern. The pattern is compiled
// once, when the check is declared; an invalid pattern panics.
func Matches(pattern string) *Check {
	return MatchesRegexp(regexp.MustCompile(pattern))
}

// MatchesRegexp is Matches with a precompiled expression.
func MatchesRegexp(re *regexp.Regexp) *Check {
	return typedCheck("matches", "'{PropertyName}' is not in the correct format.",
		func(_ *PropertyContext, v string) bool { return re.MatchString(v) }).
		WithArg("RegularExpression", re.String())
}

// Email checks that a string is a single bare email address with a dotted
// domain, such as user@example.com.
func Email() *Check {
	return typedCheck("email", "'{PropertyName}' is not a valid email address.",
		func(_ *PropertyContext, v string) bool { return isEmail(v) })
}

func isEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}
