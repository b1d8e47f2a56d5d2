// Package registry keeps named, compiled schemas and loads them from
// pluggable document sources.
package registry

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"sync"

	"github.com/aretw0/loam"
	"github.com/aretw0/sift"
	"github.com/aretw0/sift/internal/compiler"
	"github.com/aretw0/sift/internal/logging"
	loamAdapter "github.com/aretw0/sift/pkg/adapters/loam"
	"github.com/aretw0/sift/pkg/ports"
)

// Registry manages the available schemas.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]sift.Schema
	sources map[string][]byte

	loader   ports.SchemaLoader
	compiler *compiler.Compiler
	logger   *slog.Logger
}

// Option defines a functional option for configuring the Registry.
type Option func(*Registry)

// WithLoader configures the document source used by Load and Watch.
func WithLoader(loader ports.SchemaLoader) Option {
	return func(r *Registry) {
		r.loader = loader
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// New creates a new empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		schemas: make(map[string]sift.Schema),
		sources: make(map[string][]byte),
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	// Refs in documents resolve against the registry itself, lazily,
	// so definitions can reference each other in any order.
	r.compiler = compiler.New(
		compiler.WithResolver(r.Get),
		compiler.WithLogger(r.logger),
	)
	return r
}

// Open initializes a Loam-backed registry at the given path and loads
// every schema document found there.
func Open(ctx context.Context, dir string, opts ...Option) (*Registry, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	// Strict mode keeps numeric types consistent across document
	// formats; the registry never writes, so the repo opens read-only.
	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}

	typedRepo := loam.NewTypedRepository[loamAdapter.SchemaMetadata](repo)
	opts = append([]Option{WithLoader(loamAdapter.New(typedRepo))}, opts...)

	r := New(opts...)
	if err := r.Load(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

// Register adds a schema to the registry.
// If a schema with the same name exists, it is overwritten.
func (r *Registry) Register(name string, s sift.Schema) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schemas[name] = s
}

// Get looks up a schema by name.
func (r *Registry) Get(name string) (sift.Schema, error) {
	r.mu.RLock()
	s, ok := r.schemas[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("schema not found: %s", name)
	}
	return s, nil
}

// Source returns the raw document a loaded schema came from.
// Manually registered schemas have no source.
func (r *Registry) Source(name string) ([]byte, error) {
	r.mu.RLock()
	raw, ok := r.sources[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("no source for schema: %s", name)
	}
	return raw, nil
}

// List returns all registered schema names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
