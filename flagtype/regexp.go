package flagtype

import (
	"regexp"
)

// Regexp is a compiled regular expression.
type Regexp struct {
	*regexp.Regexp
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (r *Regexp) UnmarshalText(text []byte) error {
	re, err := regexp.Compile(string(text))
	if err != nil {
		return err
	}
	r.Regexp = re
	return nil
}

func (r Regexp) String() string {
	if r.Regexp == nil {
		return ""
	}
	return r.Regexp.String()
}
