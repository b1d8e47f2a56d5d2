// Package compiler turns declarative schema documents into runnable
// validation schemas.
package compiler

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/sift"
	"github.com/aretw0/sift/internal/dto"
	"github.com/aretw0/sift/internal/logging"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Resolver looks up a named schema for "ref" specs.
type Resolver func(name string) (sift.Schema, error)

// Compiler converts SchemaSpec documents into sift schemas.
type Compiler struct {
	resolver Resolver
	logger   *slog.Logger
}

// Option defines a functional option for configuring the Compiler.
type Option func(*Compiler)

// WithResolver supplies the lookup used by "ref" specs. Resolution is
// deferred until the referencing schema first parses, which allows
// self-referential definitions.
func WithResolver(r Resolver) Option {
	return func(c *Compiler) {
		c.resolver = r
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Compiler) {
		c.logger = logger
	}
}

// New creates a compiler instance.
func New(opts ...Option) *Compiler {
	c := &Compiler{
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Parse takes raw document content and tries to decode it into a spec.
// YAML and JSON are both accepted.
func (c *Compiler) Parse(data []byte) (*dto.SchemaSpec, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse schema document: %w", err)
	}
	return c.Decode(raw)
}

// Decode converts already-unmarshaled document data into a spec. This
// is the path loaders take when the document body arrives as metadata.
func (c *Compiler) Decode(data map[string]any) (*dto.SchemaSpec, error) {
	var spec dto.SchemaSpec
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &spec,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := decoder.Decode(data); err != nil {
		return nil, fmt.Errorf("failed to decode schema document: %w", err)
	}
	// Basic validation
	if spec.Name == "" {
		return nil, fmt.Errorf("schema document missing name")
	}
	return &spec, nil
}
