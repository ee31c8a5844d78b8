package validator

import (
	"net"
	"net/url"
	"regexp"
	"slices"
	"strings"
)

var (
	// E.164 with optional leading plus.
	phoneRegex        = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	alphaRegex        = regexp.MustCompile(`^[a-zA-Z]+$`)
	numericRegex      = regexp.MustCompile(`^[0-9]+$`)
	slugRegex         = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	hexRegex          = regexp.MustCompile(`^[0-9A-Fa-f]+$`)
)

// URL checks that a string is an absolute URL with a host. When schemes are
// given the URL scheme must be one of them, available to the message as
// {Schemes}.
func URL(schemes ...string) *Check {
	code, msg := "url", "'{PropertyName}' must be a valid URL."
	if len(schemes) > 0 {
		code, msg = "url_scheme", "'{PropertyName}' must be a valid URL with scheme: {Schemes}."
	}
	c := typedCheck(code, msg, func(_ *PropertyContext, v string) bool {
		u, err := url.ParseRequestURI(strings.TrimSpace(v))
		if err != nil || u.Scheme == "" || u.Host == "" {
			return false
		}
		return len(schemes) == 0 || slices.Contains(schemes, u.Scheme)
	})
	if len(schemes) > 0 {
		c.WithArg("Schemes", strings.Join(schemes, ", "))
	}
	return c
}

// IP checks that a string is an IPv4 or IPv6 address.
func IP() *Check {
	return typedCheck("ip", "'{PropertyName}' must be a valid IP address.",
		func(_ *PropertyContext, v string) bool { return net.ParseIP(v) != nil })
}

// IPv4 checks that a string is an IPv4 address.
func IPv4() *Check {
	return typedCheck("ipv4", "'{PropertyName}' must be a valid IPv4 address.",
		func(_ *PropertyContext, v string) bool {
			ip := net.ParseIP(v)
			return ip != nil && ip.To4() != nil && !strings.Contains(v, ":")
		})
}

// IPv6 checks that a string is an IPv6 address, including IPv4-mapped ones.
func IPv6() *Check {
	return typedCheck("ipv6", "'{PropertyName}' must be a valid IPv6 address.",
		func(_ *PropertyContext, v string) bool {
			return net.ParseIP(v) != nil && strings.Contains(v, ":")
		})
}

// MAC checks that a string is a MAC address such as AA:BB:CC:DD:EE:FF.
func MAC() *Check {
	return typedCheck("mac", "'{PropertyName}' must be a valid MAC address.",
		func(_ *PropertyContext, v string) bool {
			_, err := net.ParseMAC(v)
			return err == nil
		})
}

// Phone checks that a string is an international phone number. Spaces and
// dashes are ignored.
func Phone() *Check {
	return typedCheck("phone", "'{PropertyName}' must be a valid phone number in international format.",
		func(_ *PropertyContext, v string) bool {
			cleaned := strings.NewReplacer(" ", "", "-", "").Replace(v)
			return len(cleaned) >= 7 && phoneRegex.MatchString(cleaned)
		})
}

// Alpha checks that a string holds only ASCII letters.
func Alpha() *Check {
	return regexCheck("alpha", "'{PropertyName}' must contain only letters.", alphaRegex)
}

// Alphanumeric checks that a string holds only ASCII letters and digits.
func Alphanumeric() *Check {
	return regexCheck("alphanumeric", "'{PropertyName}' must contain only letters and numbers.", alphanumericRegex)
}

// Numeric checks that a string holds only digits.
func Numeric() *Check {
	return regexCheck("numeric", "'{PropertyName}' must contain only digits.", numericRegex)
}

// Slug checks that a string is a lowercase URL slug such as "my-post-1".
func Slug() *Check {
	return regexCheck("slug", "'{PropertyName}' must contain only lowercase letters, numbers and single hyphens.", slugRegex)
}

// Hex checks that a string holds only hexadecimal digits.
func Hex() *Check {
	return regexCheck("hex", "'{PropertyName}' must be a hexadecimal string.", hexRegex)
}

func regexCheck(code, message string, re *regexp.Regexp) *Check {
	return typedCheck(code, message, func(_ *PropertyContext, v string) bool { return re.MatchString(v) })
}
