// Command flagprobe runs a single flaghandler query against an explicit argument list and prints
// the result. It is handy for checking how a program will see its arguments:
//
//	$ flagprobe -type uint32 -default 50 height -- prog -height 600 -verbose
//	600
//	$ flagprobe -list -type int -default [9] nums -- prog -nums [1,x,3]
//	[9]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mfridman/xflag"

	"github.com/pressly/flaghandler"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

const usageText = `flagprobe runs one flag query against the arguments after "--".

Usage:
  flagprobe [flags] <name> -- [args...]

Types:
  presence, bool, string, int, int64, uint, uint32, float64, duration

Flags:
`

type options struct {
	name    string
	typ     string
	def     string
	list    bool
	verbose bool
	args    []string
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	var hopts []flaghandler.Option
	if opts.verbose {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		hopts = append(hopts, flaghandler.WithLogger(logger))
	}
	h := flaghandler.NewFromArgs(opts.args, hopts...)

	out, err := probe(h, opts)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	fmt.Fprintln(stdout, out)
	return 0
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	var opts options

	// Everything after the first "--" is the argument list to probe.
	front := args
	for i, arg := range args {
		if arg == "--" {
			front = args[:i]
			opts.args = args[i+1:]
			break
		}
	}

	fs := flag.NewFlagSet("flagprobe", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usageText)
		fs.PrintDefaults()
	}
	fs.StringVar(&opts.typ, "type", "string", "value type to parse")
	fs.StringVar(&opts.def, "default", "", "default value, parsed as the chosen type")
	fs.BoolVar(&opts.list, "list", false, "query a bracketed list, like [1,2,3]")
	fs.BoolVar(&opts.verbose, "v", false, "log why a default was used")

	if err := xflag.ParseToEnd(fs, front); err != nil {
		return opts, err
	}
	switch fs.NArg() {
	case 0:
		return opts, errors.New("missing flag name, see -help")
	case 1:
		opts.name = fs.Arg(0)
	default:
		return opts, fmt.Errorf("expected one flag name, got %d: %s", fs.NArg(), strings.Join(fs.Args(), " "))
	}
	return opts, nil
}

func probe(h *flaghandler.Handler, opts options) (string, error) {
	switch opts.typ {
	case "presence":
		if opts.list {
			return "", errors.New("-list cannot be used with type presence")
		}
		def := false
		if opts.def != "" {
			var err error
			if def, err = flaghandler.Parse[bool](opts.def); err != nil {
				return "", fmt.Errorf("invalid default: %w", err)
			}
		}
		return strconv.FormatBool(h.Bool(opts.name, def, "")), nil
	case "bool":
		return query[bool](h, opts)
	case "string":
		return query[string](h, opts)
	case "int":
		return query[int](h, opts)
	case "int64":
		return query[int64](h, opts)
	case "uint":
		return query[uint](h, opts)
	case "uint32":
		return query[uint32](h, opts)
	case "float64":
		return query[float64](h, opts)
	case "duration":
		return query[time.Duration](h, opts)
	default:
		return "", fmt.Errorf("unknown type %q", opts.typ)
	}
}

func query[T any](h *flaghandler.Handler, opts options) (string, error) {
	if opts.list {
		var def []T
		if opts.def != "" {
			var err error
			if def, err = flaghandler.ParseList[T](opts.def); err != nil {
				return "", fmt.Errorf("invalid default: %w", err)
			}
		}
		return formatList(flaghandler.List(h, opts.name, def, "")), nil
	}
	var def T
	if opts.def != "" {
		var err error
		if def, err = flaghandler.Parse[T](opts.def); err != nil {
			return "", fmt.Errorf("invalid default: %w", err)
		}
	}
	return fmt.Sprint(flaghandler.Value(h, opts.name, def, "")), nil
}

func formatList[T any](vals []T) string {
	parts := make([]string, 0, len(vals))
	for _, v := range vals {
		parts = append(parts, fmt.Sprint(v))
	}
	return "[" + strings.Join(parts, ",") + "]"
}
