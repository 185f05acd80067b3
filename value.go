package flaghandler

import (
	"encoding"
	"errors"
	"flag"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// ErrNotList is returned by [ParseList] when the input is not wrapped in square brackets.
var ErrNotList = errors.New("value is not a bracketed list")

// UnsupportedTypeError is returned by [Parse] when there is no known way to convert a string into
// the requested type.
type UnsupportedTypeError struct {
	Type reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return "flaghandler: unsupported type " + e.Type.String()
}

// Value returns the argument following the first -name, converted to T with [Parse]. It returns
// def if the flag is absent, if it is the last argument, or if the following argument does not
// parse. The description documents the call site and is otherwise unused.
//
// Value is a function rather than a method because Go methods cannot have type parameters.
func Value[T any](h *Handler, name string, def T, description string) T {
	raw, ok := h.raw(name)
	if !ok {
		return def
	}
	v, err := Parse[T](raw)
	if err != nil {
		h.fallback(name, "invalid value", err)
		return def
	}
	return v
}

// List returns the bracketed list following the first -name, such as -nums [1,2,3], with each
// element converted to T. It returns def if the flag is absent or has no value, if the value is not
// wrapped in brackets, or if any element fails to parse. An empty list, [], returns an empty
// non-nil slice.
func List[T any](h *Handler, name string, def []T, description string) []T {
	raw, ok := h.raw(name)
	if !ok {
		return def
	}
	vals, err := ParseList[T](raw)
	if err != nil {
		h.fallback(name, "invalid list", err)
		return def
	}
	return vals
}

// Parse converts s into a value of type T. It tries, in order:
//   - *T implementing [encoding.TextUnmarshaler]
//   - *T implementing [flag.Value]
//   - [time.Duration], using [time.ParseDuration]
//   - the kind of T: string, bool, signed and unsigned integers (base 10, sized to T), and floats
//
// Named types are handled by kind, so `type Mode string` works without extra methods. Any other
// type returns an [*UnsupportedTypeError].
func Parse[T any](s string) (T, error) {
	var v, zero T
	switch p := any(&v).(type) {
	case encoding.TextUnmarshaler:
		if err := p.UnmarshalText([]byte(s)); err != nil {
			return zero, err
		}
		return v, nil
	case flag.Value:
		if err := p.Set(s); err != nil {
			return zero, err
		}
		return v, nil
	case *time.Duration:
		d, err := time.ParseDuration(s)
		if err != nil {
			return zero, err
		}
		*p = d
		return v, nil
	}

	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.String:
		rv.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return zero, err
		}
		rv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, rv.Type().Bits())
		if err != nil {
			return zero, err
		}
		rv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := strconv.ParseUint(s, 10, rv.Type().Bits())
		if err != nil {
			return zero, err
		}
		rv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, rv.Type().Bits())
		if err != nil {
			return zero, err
		}
		rv.SetFloat(f)
	default:
		return zero, &UnsupportedTypeError{Type: rv.Type()}
	}
	return v, nil
}

// ParseList converts a bracketed, comma-separated list such as [1,2,3] into a []T, converting each
// element with [Parse]. Elements are not trimmed and commas cannot be escaped. The result is
// all-or-nothing: if any element fails, no values are returned.
//
// An input without surrounding brackets returns an error wrapping [ErrNotList]. The input [] returns
// an empty non-nil slice.
func ParseList[T any](s string) ([]T, error) {
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, fmt.Errorf("%q: %w", s, ErrNotList)
	}
	inner := s[1 : len(s)-1]
	if inner == "" {
		return []T{}, nil
	}
	parts := strings.Split(inner, ",")
	vals := make([]T, 0, len(parts))
	for i, part := range parts {
		v, err := Parse[T](part)
		if err != nil {
			return nil, fmt.Errorf("element %d %q: %w", i, part, err)
		}
		vals = append(vals, v)
	}
	return vals, nil
}
