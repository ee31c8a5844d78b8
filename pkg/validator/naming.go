package validator

import (
	"strings"
	"unicode"
)

// DisplayNameResolver turns a member identifier into the name used in messages.
type DisplayNameResolver func(memberName string) string

// SplitWords splits a Pascal, camel or snake case identifier into words:
// FirstName and first_name become "First Name" and "first name", and
// acronyms stay together, so HTTPStatus becomes "HTTP Status".
func SplitWords(name string) string {
	if name == "" {
		return ""
	}

	runes := []rune(name)
	var b strings.Builder
	b.Grow(len(name) + 4)

	for i, r := range runes {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			if b.Len() > 0 && !strings.HasSuffix(b.String(), " ") {
				b.WriteByte(' ')
			}
			continue
		}
		if i > 0 && unicode.IsUpper(r) && b.Len() > 0 && !strings.HasSuffix(b.String(), " ") {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte(' ')
			}
		}
		b.WriteRune(r)
	}

	return strings.TrimSpace(b.String())
}
