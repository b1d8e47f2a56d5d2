package memory

import (
	"fmt"
	"sort"
)

// Loader implements ports.SchemaLoader using an in-memory map.
type Loader struct {
	schemas map[string][]byte
}

// NewLoader creates a new memory loader with the provided raw documents
// (YAML or JSON strings).
func NewLoader(data map[string]string) *Loader {
	schemas := make(map[string][]byte)
	for k, v := range data {
		schemas[k] = []byte(v)
	}
	return &Loader{
		schemas: schemas,
	}
}

// GetSchema retrieves the raw definition of a schema by ID.
func (l *Loader) GetSchema(id string) ([]byte, error) {
	content, ok := l.schemas[id]
	if !ok {
		return nil, fmt.Errorf("schema not found: %s", id)
	}
	return content, nil
}

// ListSchemas returns all available schema IDs.
func (l *Loader) ListSchemas() ([]string, error) {
	keys := make([]string, 0, len(l.schemas))
	for k := range l.schemas {
		keys = append(keys, k)
	}
	sort.Strings(keys) // Deterministic order
	return keys, nil
}
