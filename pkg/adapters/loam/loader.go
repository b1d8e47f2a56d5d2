package loam

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aretw0/loam"
)

// Loader adapts the Loam library to the sift SchemaLoader interface.
// Schema definitions live in document frontmatter; a Markdown body, if
// present, becomes the schema's doc text.
type Loader struct {
	Repo *loam.TypedRepository[SchemaMetadata]
}

// New creates a new Loam adapter.
func New(repo *loam.TypedRepository[SchemaMetadata]) *Loader {
	return &Loader{
		Repo: repo,
	}
}

// GetSchema retrieves a schema from the Loam repository using the direct Service API.
// The document is rebuilt as JSON for the compiler, which accepts it as a YAML subset.
func (l *Loader) GetSchema(id string) ([]byte, error) {
	ctx := context.Background()

	doc, err := l.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loam get failed for %s: %w", id, err)
	}

	data, err := buildSchemaData(doc.ID, doc.Data, doc.Content)
	if err != nil {
		return nil, err
	}

	bytes, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema data: %w", err)
	}

	return bytes, nil
}

// buildSchemaData assembles the document map the compiler decodes. Only
// keys the frontmatter set are emitted, so compiler defaults still apply.
func buildSchemaData(docID string, meta SchemaMetadata, content string) (map[string]any, error) {
	data := make(map[string]any)

	name := meta.Name
	if name == "" {
		name = trimExtension(docID)
	}
	data["name"] = name

	if meta.Type == "" {
		return nil, fmt.Errorf("schema %s missing type", name)
	}
	data["type"] = meta.Type

	doc := meta.Doc
	if doc == "" {
		doc = strings.TrimSpace(content)
	}
	if doc != "" {
		data["doc"] = doc
	}

	if meta.Ref != "" {
		data["ref"] = meta.Ref
	}
	if meta.Optional {
		data["optional"] = meta.Optional
	}
	if len(meta.Values) > 0 {
		data["values"] = meta.Values
	}
	if len(meta.Fields) > 0 {
		data["fields"] = meta.Fields
	}
	if len(meta.Items) > 0 {
		data["items"] = meta.Items
	}
	if meta.Unknown != "" {
		data["unknown"] = meta.Unknown
	}
	if len(meta.Input) > 0 {
		data["input"] = meta.Input
	}
	if len(meta.Output) > 0 {
		data["output"] = meta.Output
	}
	if meta.Min != nil {
		data["min"] = *meta.Min
	}
	if meta.Max != nil {
		data["max"] = *meta.Max
	}
	if meta.Pattern != "" {
		data["pattern"] = meta.Pattern
	}
	if meta.Refine != "" {
		data["refine"] = meta.Refine
	}

	return data, nil
}

// ListSchemas lists all schemas in the repository.
func (l *Loader) ListSchemas() ([]string, error) {
	ctx := context.Background()
	docs, err := l.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	seen := make(map[string]string)
	ids := make([]string, 0, len(docs))

	for _, doc := range docs {
		// Use the name from metadata if available, otherwise filename ID
		rawID := doc.Data.Name
		if rawID == "" {
			rawID = doc.ID
		}
		id := trimExtension(rawID)

		// Collision Detection
		if existingPath, ok := seen[id]; ok {
			return nil, fmt.Errorf("collision detected: schema '%s' is defined in both '%s' and '%s'", id, existingPath, doc.ID)
		}
		seen[id] = doc.ID
		ids = append(ids, id)
	}
	return ids, nil
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	if ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}

// Watch implements ports.Watchable.
func (l *Loader) Watch(ctx context.Context) (<-chan string, error) {
	// Watch for all relevant files (recursive) using doublestar pattern supported by Loam/Doublestar
	events, err := l.Repo.Watch(ctx, "**/*.{md,json,yaml,yml}")
	if err != nil {
		return nil, fmt.Errorf("failed to start loam watcher: %w", err)
	}

	ch := make(chan string, 1)

	go func() {
		defer close(ch)
		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-events:
				if !ok {
					return
				}
				// Loam debounces internally. Pass the changed ID up the
				// chain, respecting context cancellation.
				select {
				case ch <- trimExtension(evt.ID):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch, nil
}
