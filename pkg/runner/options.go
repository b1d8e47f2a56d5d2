package runner

import (
	"io"
	"log/slog"

	"github.com/aretw0/sift"
	"github.com/aretw0/sift/pkg/ports"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithHooks instruments the schema for the duration of a run, for metrics
// or tracing collectors.
func WithHooks(h sift.Hooks) Option {
	return func(r *Runner) {
		r.hooks = h
		r.hasHooks = true
	}
}

// WithAbortEarly stops each validation at its first issue. Reports then
// carry at most one issue per failing input.
func WithAbortEarly() Option {
	return func(r *Runner) {
		r.abortEarly = true
	}
}

// WithOutput streams report lines to w as results are produced.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.output = w
	}
}

// WithRenderer configures the line renderer (e.g. TUI colorizer).
func WithRenderer(renderer ports.Renderer) Option {
	return func(r *Runner) {
		r.renderer = renderer
	}
}
