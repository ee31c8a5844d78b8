package validator

import (
	"encoding/base64"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	usernameRegex  = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	subdomainRegex = regexp.MustCompile(`^[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?$`)
	semverRegex    = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*))*))?(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`)
)

// Username checks that a string has between min and max characters made of
// letters, digits, underscores and hyphens.
func Username(min, max int) *Check {
	return typedCheck("username",
		"'{PropertyName}' must be {MinLength}-{MaxLength} characters long and contain only letters, numbers, underscores and hyphens.",
		func(_ *PropertyContext, v string) bool {
			n := utf8.RuneCountInString(v)
			return n >= min && n <= max && usernameRegex.MatchString(v)
		}).
		WithArg("MinLength", min).
		WithArg("MaxLength", max)
}

// Base64 checks that a string is padded standard base64.
func Base64() *Check {
	return typedCheck("base64", "'{PropertyName}' must be a valid base64 encoded string.",
		func(_ *PropertyContext, v string) bool {
			if v == "" {
				return false
			}
			_, err := base64.StdEncoding.Strict().DecodeString(v)
			return err == nil
		})
}

// DomainName checks that a string is a fully qualified host name such as
// example.com: dot separated labels of 1 to 63 letters, digits or hyphens and
// an alphabetic top level domain.
func DomainName() *Check {
	return typedCheck("domain_name", "'{PropertyName}' must be a valid domain name.",
		func(_ *PropertyContext, v string) bool { return isDomainName(v) })
}

// Subdomain checks that a string is a single DNS label.
func Subdomain() *Check {
	return typedCheck("subdomain", "'{PropertyName}' must be a valid subdomain.",
		func(_ *PropertyContext, v string) bool { return len(v) <= 63 && subdomainRegex.MatchString(v) })
}

// SemVer checks that a string is a semantic version such as 1.2.3 or
// 1.0.0-alpha.1+build.5.
func SemVer() *Check {
	return typedCheck("semver", "'{PropertyName}' must be a valid semantic version.",
		func(_ *PropertyContext, v string) bool { return semverRegex.MatchString(v) })
}

func isDomainName(v string) bool {
	if v == "" || len(v) > 253 {
		return false
	}
	labels := strings.Split(v, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if len(label) > 63 || !subdomainRegex.MatchString(label) {
			return false
		}
	}
	tld := labels[len(labels)-1]
	if len(tld) < 2 {
		return false
	}
	for _, r := range tld {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
