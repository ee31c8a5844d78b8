package validator

import (
	"reflect"
	"strings"
)

// NotNil fails when the value is nil (nil pointer, interface, map, slice,
// func or channel).
func NotNil() *Check {
	return NewCheck("not_nil", "'{PropertyName}' must not be empty.", func(ctx *PropertyContext) (bool, error) {
		return !isNilValue(ctx.PropertyValue), nil
	})
}

// NotEmpty fails for nil, the zero value, blank strings and empty
// collections.
func NotEmpty() *Check {
	return NewCheck("not_empty", "'{PropertyName}' should not be empty.", func(ctx *PropertyContext) (bool, error) {
		return !isEmptyValue(ctx.PropertyValue), nil
	})
}

// Empty is the opposite of NotEmpty.
func Empty() *Check {
	return NewCheck("empty", "'{PropertyName}' should be empty.", func(ctx *PropertyContext) (bool, error) {
		return isEmptyValue(ctx.PropertyValue), nil
	})
}

func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func isEmptyValue(v any) bool {
	if isNilValue(v) {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() == 0
	case reflect.String:
		return strings.TrimSpace(rv.String()) == ""
	}
	return rv.IsZero()
}
