// Package cli implements the command orchestration behind the sift binary:
// schema resolution, data decoding, report rendering and watch loops. The
// cobra layer in cmd/sift stays a thin flag parser over these functions.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/sift"
	"github.com/aretw0/sift/internal/compiler"
	"github.com/aretw0/sift/internal/dto"
	"github.com/aretw0/sift/internal/logging"
	"github.com/aretw0/sift/pkg/registry"
)

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	start  sync.Once
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// It acts as a drop-in replacement for signal.NotifyContext but allows retrieving the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	sc.start.Do(func() {
		signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			select {
			case sig := <-sc.sigCh:
				sc.mu.Lock()
				sc.sigVal = sig
				sc.mu.Unlock()
				sc.Cancel()
			case <-sc.Context.Done():
				// Context cancelled elsewhere
			}
			sc.stop.Do(func() {
				signal.Stop(sc.sigCh)
			})
		}()
	})

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// createLogger configures the application logger.
// In debug mode, it writes to Stderr (to separate from Stdout reports).
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

// printSystemMessage prints a standardized system message to out.
func printSystemMessage(out io.Writer, format string, args ...any) {
	fmt.Fprintf(out, ">>> %s\n", fmt.Sprintf(format, args...))
}

// loadSpecFile parses one schema document from disk without compiling it.
func loadSpecFile(path string) (*dto.SchemaSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	spec, err := compiler.New().Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return spec, nil
}

// compileSchemaFile parses and compiles one standalone schema document.
// Documents using "ref" need a registry directory instead; the compiler
// reports that explicitly.
func compileSchemaFile(path string, logger *slog.Logger) (sift.Schema, error) {
	spec, err := loadSpecFile(path)
	if err != nil {
		return nil, err
	}
	s, err := compiler.New(compiler.WithLogger(logger)).Compile(spec)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return s, nil
}

// openRegistry opens a schema directory and returns the named schema from
// it, along with the registry for callers that keep watching.
func openRegistry(ctx context.Context, dir, name string, logger *slog.Logger) (*registry.Registry, sift.Schema, error) {
	reg, err := registry.Open(ctx, dir, registry.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}
	if name == "" {
		return nil, nil, fmt.Errorf("a schema name is required with --dir (available: %v)", reg.List())
	}
	s, err := reg.Get(name)
	if err != nil {
		return nil, nil, fmt.Errorf("%w (available: %v)", err, reg.List())
	}
	return reg, s, nil
}

// decodeDataFile reads one data document as YAML (accepting JSON, a YAML
// subset). The path "-" reads from in instead.
func decodeDataFile(path string, in io.Reader) (any, error) {
	var raw []byte
	var err error
	if path == "-" {
		raw, err = io.ReadAll(in)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read data: %w", err)
	}

	var value any
	if err := yaml.Unmarshal(raw, &value); err != nil {
		return nil, fmt.Errorf("decode data: %w", err)
	}
	return value, nil
}

// inputName labels a data document in reports.
func inputName(path string) string {
	if path == "-" {
		return "stdin"
	}
	return filepath.Base(path)
}
