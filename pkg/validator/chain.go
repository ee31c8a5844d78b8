package validator

import (
	"strconv"
	"strings"
)

// PropertyChain is the path of property names leading to the value under
// validation, for example Customer.Address.Line1.
type PropertyChain struct {
	segments []string
}

// NewPropertyChain creates a chain from the given segments.
// Empty segments are ignored.
func NewPropertyChain(segments ...string) *PropertyChain {
	c := &PropertyChain{segments: make([]string, 0, len(segments)+1)}
	for _, s := range segments {
		c.Add(s)
	}
	return c
}

// Add appends a segment in place.
func (c *PropertyChain) Add(segment string) {
	if segment == "" {
		return
	}
	c.segments = append(c.segments, segment)
}

// AddIndexer decorates the last segment with a collection index, so that
// Orders becomes Orders[2]. It is a no-op on an empty chain.
func (c *PropertyChain) AddIndexer(index int) {
	if len(c.segments) == 0 {
		return
	}
	last := len(c.segments) - 1
	c.segments[last] = c.segments[last] + "[" + strconv.Itoa(index) + "]"
}

// Child returns a copy of the chain extended by segment.
// The receiver is left untouched.
func (c *PropertyChain) Child(segment string) *PropertyChain {
	child := &PropertyChain{segments: make([]string, len(c.Segments()), len(c.Segments())+1)}
	copy(child.segments, c.Segments())
	child.Add(segment)
	return child
}

// Segments returns the chain segments.
func (c *PropertyChain) Segments() []string {
	if c == nil {
		return nil
	}
	return c.segments
}

// Len returns the number of segments.
func (c *PropertyChain) Len() int {
	return len(c.Segments())
}

// BuildPropertyName returns the full dotted path for the leaf name.
// An empty leaf yields the chain itself without a trailing separator.
func (c *PropertyChain) BuildPropertyName(propertyName string) string {
	if c.Len() == 0 {
		return propertyName
	}
	if propertyName == "" {
		return c.String()
	}
	return c.String() + "." + propertyName
}

func (c *PropertyChain) String() string {
	return strings.Join(c.Segments(), ".")
}
