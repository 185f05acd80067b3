// Package flaghandler answers simple questions about a program's command-line arguments: is a flag
// present, and what value follows it.
//
// A [Handler] snapshots the argument list once and every query runs against that snapshot. Flags
// are written as a single dash followed by the name, with an optional value in the next argument:
//
//	prog -verbose -width 800 -nums [1,2,3]
//
// Queries never fail. A missing flag, a missing value, or a value that does not parse all return
// the caller's default:
//
//	h := flaghandler.New()
//	verbose := h.Bool("verbose", false, "enable verbose output")
//	width := flaghandler.Value[uint32](h, "width", 50, "the width")
//	nums := flaghandler.List[int](h, "nums", []int{9}, "some numbers")
//
// Values are converted with [Parse], which understands strings, booleans, integers, floats,
// [time.Duration], and any type whose pointer implements [encoding.TextUnmarshaler] or
// [flag.Value]. The flagtype subpackage provides a few such types.
//
// To see why a default was returned, attach a logger with [WithLogger]. Fallbacks are then logged
// at debug level. The returned values are the same either way.
package flaghandler
