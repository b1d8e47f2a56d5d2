// Package runner executes a schema against batches of named inputs and
// collects per-input reports. It owns the loop and the output stream so
// frontends (CLI, TUI, CI jobs) stay thin.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/sift"
	"github.com/aretw0/sift/internal/logging"
	"github.com/aretw0/sift/pkg/issue"
	"github.com/aretw0/sift/pkg/ports"
)

// Runner validates batches of inputs against one schema.
type Runner struct {
	logger     *slog.Logger
	hooks      sift.Hooks
	hasHooks   bool
	abortEarly bool
	output     io.Writer
	renderer   ports.Renderer
}

// New creates a Runner. Without options it is silent: no output stream and
// a no-op logger.
func New(opts ...Option) *Runner {
	r := &Runner{
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run validates every input against s, in order. The returned report holds
// one result per processed input. Cancellation is honored between inputs;
// the error then reports ctx.Err() alongside the partial report.
func (r *Runner) Run(ctx context.Context, s sift.Schema, inputs []Input) (*Report, error) {
	if s == nil {
		return nil, fmt.Errorf("runner: schema is required")
	}
	if r.hasHooks {
		s = sift.Instrument(s, r.hooks)
	}

	var opts []sift.ParseOption
	if r.abortEarly {
		opts = append(opts, sift.AbortEarly())
	}

	report := &Report{Results: make([]Result, 0, len(inputs))}
	for _, in := range inputs {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		value, err := sift.Parse(s, in.Value, opts...)
		res := Result{Name: in.Name, Value: value}
		if err != nil {
			var verr *issue.Error
			if !errors.As(err, &verr) {
				return report, fmt.Errorf("validate %s: %w", in.Name, err)
			}
			res.Err = verr
		}
		report.Results = append(report.Results, res)

		r.logger.Debug("input validated",
			"name", in.Name,
			"issues", res.IssueCount(),
		)
		if err := r.emit(res); err != nil {
			return report, err
		}
	}
	return report, nil
}

// emit writes one result to the configured output, through the renderer
// when one is set.
func (r *Runner) emit(res Result) error {
	if r.output == nil {
		return nil
	}
	for _, line := range res.Lines() {
		if r.renderer != nil {
			rendered, err := r.renderer(line)
			if err != nil {
				return fmt.Errorf("render output: %w", err)
			}
			line = rendered
		}
		if _, err := fmt.Fprintln(r.output, line); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}
