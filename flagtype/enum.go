package flagtype

import (
	"fmt"
	"slices"
	"strings"
)

// EnumValue is a string restricted to a fixed set of allowed values. It implements [flag.Value].
type EnumValue struct {
	val     string
	allowed []string
}

// Enum returns an empty [EnumValue] that accepts only the allowed values.
func Enum(allowed ...string) *EnumValue {
	return &EnumValue{allowed: slices.Clone(allowed)}
}

// EnumDefault is like [Enum] but starts out holding defaultVal. The default must be one of the
// allowed values, otherwise EnumDefault panics.
func EnumDefault(defaultVal string, allowed []string) *EnumValue {
	if !slices.Contains(allowed, defaultVal) {
		panic(fmt.Sprintf("flagtype: default value %q is not in allowed values: %s",
			defaultVal, strings.Join(allowed, ", ")))
	}
	return &EnumValue{val: defaultVal, allowed: slices.Clone(allowed)}
}

// Allowed returns the accepted values in the order they were given.
func (v *EnumValue) Allowed() []string {
	return slices.Clone(v.allowed)
}

func (v *EnumValue) String() string {
	return v.val
}

// Set replaces the value. Anything outside the allowed set is rejected and the current value is
// kept.
func (v *EnumValue) Set(s string) error {
	if !slices.Contains(v.allowed, s) {
		return fmt.Errorf("invalid value %q, must be one of: %s", s, strings.Join(v.allowed, ", "))
	}
	v.val = s
	return nil
}
