package domain

import (
	"fmt"
	"strconv"
)

// OptionalBool is a boolean that distinguishes "not provided" from false.
// The zero value is unset.
type OptionalBool struct {
	value bool
	set   bool
}

// Unset returns an OptionalBool with no value.
func Unset() OptionalBool {
	return OptionalBool{}
}

// Bool returns an OptionalBool holding v.
func Bool(v bool) OptionalBool {
	return OptionalBool{value: v, set: true}
}

// ParseOptionalBool parses "true"/"1" and "false"/"0".
// An empty string yields an unset value.
func ParseOptionalBool(s string) (OptionalBool, error) {
	if s == "" {
		return Unset(), nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return Unset(), fmt.Errorf("parse optional bool %q: %w", s, err)
	}
	return Bool(v), nil
}

// IsSet reports whether a value was provided.
func (o OptionalBool) IsSet() bool {
	return o.set
}

// Value returns the held value, or false when unset.
func (o OptionalBool) Value() bool {
	return o.value
}

// String returns "true", "false" or "unset".
func (o OptionalBool) String() string {
	if !o.set {
		return "unset"
	}
	return strconv.FormatBool(o.value)
}
