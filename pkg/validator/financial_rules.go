package validator

import (
	"math"
	"strings"
)

// CreditCard checks that a string is a 13 to 19 digit card number with a
// valid Luhn checksum. Spaces and dashes are ignored.
func CreditCard() *Check {
	return typedCheck("credit_card", "'{PropertyName}' is not a valid credit card number.",
		func(_ *PropertyContext, v string) bool { return luhnValid(v) })
}

// DecimalPrecision checks that a float has at most maxDecimals digits after
// the decimal point, e.g. 2 for amounts in USD and 0 for JPY. The number of
// digits found is available to the message as {ActualDecimals}.
func DecimalPrecision(maxDecimals int) *Check {
	return typedCheck("decimal_precision",
		"'{PropertyName}' must not have more than {MaxDecimals} decimal places. It has {ActualDecimals}.",
		func(ctx *PropertyContext, v float64) bool {
			n := decimalPlaces(v)
			ctx.MessageFormatter().AppendArgument("ActualDecimals", n)
			return n <= maxDecimals
		}).
		WithArg("MaxDecimals", maxDecimals)
}

func luhnValid(value string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(value)
	if len(cleaned) < 13 || len(cleaned) > 19 {
		return false
	}

	sum := 0
	double := false
	for i := len(cleaned) - 1; i >= 0; i-- {
		c := cleaned[i]
		if c < '0' || c > '9' {
			return false
		}
		digit := int(c - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}
	return sum%10 == 0
}

// decimalPlaces counts fractional digits. The relative tolerance absorbs
// binary rounding, so 19.99 counts as two places.
func decimalPlaces(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	v = math.Abs(v)
	for n := 0; n <= 15; n++ {
		scaled := v * math.Pow10(n)
		if math.Abs(scaled-math.Round(scaled)) < 1e-9*math.Max(1, scaled) {
			return n
		}
	}
	return 16
}
