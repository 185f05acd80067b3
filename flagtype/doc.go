// Package flagtype provides value types that plug into the flaghandler parse-from-string
// capability.
//
// [URL], [Regexp] and [KeyValue] implement [encoding.TextUnmarshaler], so they can be used directly
// as type arguments:
//
//	endpoint := flaghandler.Value(h, "endpoint", flagtype.URL{}, "API endpoint")
//	pattern := flaghandler.Value(h, "match", flagtype.Regexp{}, "filter pattern")
//	labels := flagtype.Map(flaghandler.List[flagtype.KeyValue](h, "labels", nil, "key=value pairs"))
//
// [Enum] needs its allowed values up front, so it returns an [EnumValue] for use with
// [flaghandler.Handler.Var]:
//
//	format := flagtype.EnumDefault("table", []string{"json", "yaml", "table"})
//	h.Var("format", format, "output format")
package flagtype
