package flagtype

import (
	"fmt"
	"strings"
)

// KeyValue is a single key=value pair. The text is split on the first "=", so the value may
// contain more "=" characters. An empty key is an error; an empty value is not.
//
// A list of pairs is written like any other list, for example -label [env=prod,tier=web].
type KeyValue struct {
	Key, Value string
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (kv *KeyValue) UnmarshalText(text []byte) error {
	s := string(text)
	key, value, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("invalid key=value pair: %q (missing '=')", s)
	}
	if key == "" {
		return fmt.Errorf("invalid key=value pair: %q (empty key)", s)
	}
	kv.Key, kv.Value = key, value
	return nil
}

func (kv KeyValue) String() string {
	return kv.Key + "=" + kv.Value
}

// Map collects pairs into a map. Later pairs overwrite earlier ones with the same key. It returns
// nil when pairs is nil.
func Map(pairs []KeyValue) map[string]string {
	if pairs == nil {
		return nil
	}
	m := make(map[string]string, len(pairs))
	for _, kv := range pairs {
		m[kv.Key] = kv.Value
	}
	return m
}
