package validator

import (
	"fmt"
	"reflect"
)

// MinItems checks that a slice, array or map has at least min elements.
func MinItems(min int) *Check {
	return countCheck("min_items", "'{PropertyName}' must contain at least {MinItems} items. It contains {TotalItems}.",
		func(n int) bool { return n >= min }).
		WithArg("MinItems", min)
}

// MaxItems checks that a slice, array or map has at most max elements.
func MaxItems(max int) *Check {
	return countCheck("max_items", "'{PropertyName}' must contain at most {MaxItems} items. It contains {TotalItems}.",
		func(n int) bool { return n <= max }).
		WithArg("MaxItems", max)
}

func countCheck(code, message string, accept func(n int) bool) *Check {
	return NewCheck(code, message, func(ctx *PropertyContext) (bool, error) {
		if ctx.PropertyValue == nil {
			ctx.MessageFormatter().AppendArgument("TotalItems", 0)
			return accept(0), nil
		}
		rv := reflect.ValueOf(ctx.PropertyValue)
		switch rv.Kind() {
		case reflect.Slice, reflect.Array, reflect.Map:
		default:
			return false, fmt.Errorf("%w: %s holds %T, expected a slice, array or map",
				ErrTypeMismatch, ctx.PropertyPath, ctx.PropertyValue)
		}
		n := rv.Len()
		ctx.MessageFormatter().AppendArgument("TotalItems", n)
		return accept(n), nil
	})
}
