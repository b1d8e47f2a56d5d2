package cli

import (
	"context"
	"errors"
	"fmt"
)

// RunValidateWatch runs validation in development mode: it revalidates the
// data documents whenever the schema directory changes, until interrupted.
// Failing inputs do not stop the loop; an interrupt is a clean exit.
func RunValidateWatch(opts ValidateOptions) error {
	if err := opts.normalize(); err != nil {
		return err
	}
	if opts.Dir == "" {
		return fmt.Errorf("--watch requires --dir (a registry directory to watch)")
	}

	logger := createLogger(opts.Debug)

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	reg, schema, err := openRegistry(sigCtx, opts.Dir, opts.Name, logger)
	if err != nil {
		return err
	}

	events, err := reg.Watch(sigCtx)
	if err != nil {
		return err
	}

	logger.Info("watching schema directory", "dir", opts.Dir, "schema", opts.Name)
	if !opts.Quiet {
		printSystemMessage(opts.Out, "Watching '%s' for changes...", opts.Dir)
	}

	revalidate := func() {
		inputs, err := decodeInputs(opts)
		if err != nil {
			logger.Warn("data decode failed", "err", err)
			if !opts.Quiet {
				printSystemMessage(opts.Out, "Data error: %v", err)
			}
			return
		}
		report, err := validateOnce(sigCtx, schema, inputs, opts, logger)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			logger.Warn("validation run failed", "err", err)
			return
		}
		if !opts.Quiet && report.Valid() {
			printSystemMessage(opts.Out, "All %d inputs valid.", len(report.Results))
		}
	}

	revalidate()

	for {
		select {
		case <-sigCtx.Done():
			if !opts.Quiet {
				printSystemMessage(opts.Out, "Stopped.")
			}
			return nil
		case id, ok := <-events:
			if !ok {
				return nil
			}
			if !opts.Quiet {
				printSystemMessage(opts.Out, "Change detected in '%s'.", id)
			}
			// The registry reloaded before announcing the change; pick up
			// the fresh compilation.
			s, err := reg.Get(opts.Name)
			if err != nil {
				logger.Warn("schema disappeared after reload", "schema", opts.Name, "err", err)
				if !opts.Quiet {
					printSystemMessage(opts.Out, "Schema error: %v", err)
				}
				continue
			}
			schema = s
			revalidate()
		}
	}
}
