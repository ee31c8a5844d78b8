package validator

import (
	"fmt"
	"regexp"
	"strconv"
)

// Reserved placeholder keys.
const (
	PlaceholderPropertyName  = "PropertyName"
	PlaceholderPropertyValue = "PropertyValue"
)

var placeholderRegex = regexp.MustCompile(`\{([^{}]+)\}`)

// MessageFormatter collects placeholder values and substitutes them into a
// message template. Placeholders take the form {Name} for named values and
// {0}, {1}, ... for positional custom arguments.
//
// A formatter is created per check invocation and must not be shared.
type MessageFormatter struct {
	values     map[string]string
	positional int
}

// NewMessageFormatter returns an empty formatter.
func NewMessageFormatter() *MessageFormatter {
	return &MessageFormatter{values: make(map[string]string, 4)}
}

// AppendPropertyName records the display name under {PropertyName}.
func (f *MessageFormatter) AppendPropertyName(name string) *MessageFormatter {
	return f.AppendArgument(PlaceholderPropertyName, name)
}

// AppendPropertyValue records the attempted value under {PropertyValue}.
func (f *MessageFormatter) AppendPropertyValue(value any) *MessageFormatter {
	return f.AppendArgument(PlaceholderPropertyValue, value)
}

// AppendArgument records a named placeholder value. A later value for the
// same name replaces the earlier one.
func (f *MessageFormatter) AppendArgument(name string, value any) *MessageFormatter {
	f.values[name] = formatValue(value)
	return f
}

// AppendAdditionalArguments records positional values. Successive calls
// continue numbering where the previous call stopped.
func (f *MessageFormatter) AppendAdditionalArguments(values ...any) *MessageFormatter {
	for _, v := range values {
		f.values[strconv.Itoa(f.positional)] = formatValue(v)
		f.positional++
	}
	return f
}

// Value returns the recorded value for a placeholder.
func (f *MessageFormatter) Value(name string) (string, bool) {
	v, ok := f.values[name]
	return v, ok
}

// BuildMessage substitutes recorded values into template.
// Placeholders without a recorded value are kept as they are.
func (f *MessageFormatter) BuildMessage(template string) string {
	if len(f.values) == 0 {
		return template
	}
	return placeholderRegex.ReplaceAllStringFunc(template, func(match string) string {
		if val, ok := f.values[match[1:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
