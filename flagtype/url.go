package flagtype

import (
	"fmt"
	"net/url"
)

// URL is an absolute URL. Parsing fails unless both a scheme and a host are present.
type URL struct {
	*url.URL
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *URL) UnmarshalText(text []byte) error {
	s := string(text)
	parsed, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", s, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid URL %q: must have a scheme and host", s)
	}
	u.URL = parsed
	return nil
}

func (u URL) String() string {
	if u.URL == nil {
		return ""
	}
	return u.URL.String()
}
