package flaghandler

import (
	"flag"
	"log/slog"
	"os"
	"slices"
)

// Handler holds a snapshot of command-line arguments and answers flag queries against it. The
// snapshot is never modified after construction, so a Handler is safe for concurrent use.
type Handler struct {
	args   []string
	logger *slog.Logger
}

// Option configures a [Handler].
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger sets a logger that receives a debug record each time a query falls back to its
// default. A nil logger disables logging, which is also the default.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// New returns a Handler for the current process arguments, [os.Args], including the program name.
func New(opts ...Option) *Handler {
	return NewFromArgs(os.Args, opts...)
}

// NewFromArgs returns a Handler for the given arguments. The slice is copied, so later changes to
// args are not seen by the Handler. By convention args[0] is the program name, but it is treated
// like any other argument.
func NewFromArgs(args []string, opts ...Option) *Handler {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Handler{
		args:   slices.Clone(args),
		logger: cfg.logger,
	}
}

// Args returns a copy of the argument snapshot.
func (h *Handler) Args() []string {
	return slices.Clone(h.args)
}

// Bool reports whether the flag -name appears anywhere in the arguments. If it does not, def is
// returned. The description documents the call site and is otherwise unused.
func (h *Handler) Bool(name string, def bool, description string) bool {
	if _, ok := h.locate(name); ok {
		return true
	}
	h.fallback(name, "flag not present", nil)
	return def
}

// Var sets v from the argument following -name. It reports whether v was set. If the flag is
// absent or has no following argument, v is not touched. If v.Set fails, false is returned and v
// holds whatever Set left behind.
//
// Var is meant for values that need setup before parsing, such as an enum with its allowed set.
// For everything else, prefer [Value].
func (h *Handler) Var(name string, v flag.Value, description string) bool {
	raw, ok := h.raw(name)
	if !ok {
		return false
	}
	if err := v.Set(raw); err != nil {
		h.fallback(name, "invalid value", err)
		return false
	}
	return true
}

// locate returns the index of the first argument equal to -name.
func (h *Handler) locate(name string) (int, bool) {
	i := slices.Index(h.args, formatFlagName(name))
	return i, i >= 0
}

// raw returns the argument immediately after the first -name.
func (h *Handler) raw(name string) (string, bool) {
	i, ok := h.locate(name)
	if !ok {
		h.fallback(name, "flag not present", nil)
		return "", false
	}
	if i+1 >= len(h.args) {
		h.fallback(name, "missing value", nil)
		return "", false
	}
	return h.args[i+1], true
}

func (h *Handler) fallback(name, reason string, err error) {
	if h.logger == nil {
		return
	}
	attrs := []any{
		slog.String("flag", formatFlagName(name)),
		slog.String("reason", reason),
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}
	h.logger.Debug("using default flag value", attrs...)
}

func formatFlagName(name string) string {
	return "-" + name
}
