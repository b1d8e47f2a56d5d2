package registry

import (
	"context"
	"fmt"

	"github.com/aretw0/sift"
	"github.com/aretw0/sift/internal/dto"
	"github.com/aretw0/sift/internal/validator"
	"github.com/aretw0/sift/pkg/ports"
)

// Load pulls every schema from the configured loader. Documents are
// parsed and cross-checked first; nothing is registered unless the
// whole set is sound.
func (r *Registry) Load(ctx context.Context) error {
	if r.loader == nil {
		return fmt.Errorf("no loader configured")
	}

	ids, err := r.loader.ListSchemas()
	if err != nil {
		return fmt.Errorf("failed to list schemas: %w", err)
	}

	specs := make(map[string]*dto.SchemaSpec, len(ids))
	sources := make(map[string][]byte, len(ids))
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return err
		}
		raw, err := r.loader.GetSchema(id)
		if err != nil {
			return fmt.Errorf("failed to load schema %s: %w", id, err)
		}
		spec, err := r.compiler.Parse(raw)
		if err != nil {
			return fmt.Errorf("schema %s: %w", id, err)
		}
		specs[spec.Name] = spec
		sources[spec.Name] = raw
	}

	if err := validator.Error(validator.Check(specs)); err != nil {
		return err
	}

	// Compile the full set before touching registry state, so a late
	// failure leaves previously loaded schemas intact.
	compiled := make(map[string]sift.Schema, len(specs))
	for name, spec := range specs {
		s, err := r.compiler.Compile(spec)
		if err != nil {
			return fmt.Errorf("schema %s: %w", name, err)
		}
		compiled[name] = s
	}

	r.mu.Lock()
	for name, s := range compiled {
		r.schemas[name] = s
		r.sources[name] = sources[name]
	}
	r.mu.Unlock()

	r.logger.Info("schemas loaded", "count", len(compiled))
	return nil
}

// Watch reloads the registry as documents change, forwarding the ID of
// each change that loaded cleanly. The loader must support watching.
func (r *Registry) Watch(ctx context.Context) (<-chan string, error) {
	w, ok := r.loader.(ports.Watchable)
	if !ok {
		return nil, fmt.Errorf("loader does not support watching")
	}

	events, err := w.Watch(ctx)
	if err != nil {
		return nil, err
	}

	ch := make(chan string, 1)

	go func() {
		defer close(ch)
		for {
			select {
			case <-ctx.Done():
				return
			case id, ok := <-events:
				if !ok {
					return
				}
				// A full reload keeps cross-references fresh; edits are
				// rare enough that recompiling the set is cheap.
				if err := r.Load(ctx); err != nil {
					r.logger.Warn("schema reload failed", "schema", id, "err", err)
					continue
				}
				select {
				case ch <- id:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch, nil
}
