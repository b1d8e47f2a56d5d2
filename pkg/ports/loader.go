package ports

import "context"

// SchemaLoader defines how the registry retrieves schema documents.
// This allows the storage layer (Loam, FS, Memory) to be decoupled.
type SchemaLoader interface {
	// GetSchema retrieves the raw definition of a schema by ID.
	// It returns the raw bytes (which the compiler will parse) or an error.
	GetSchema(id string) ([]byte, error)

	// ListSchemas returns a list of all schema IDs available in the source.
	// This is used for introspection tools (e.g. 'sift describe').
	ListSchemas() ([]string, error)
}

// Watchable defines an interface for loaders that can notify about backend changes.
// This is typically used for hot-reload or dev-mode functionality.
type Watchable interface {
	// Watch returns a channel carrying the ID of each schema that changes.
	// The channel closes when ctx is cancelled or the source goes away.
	Watch(ctx context.Context) (<-chan string, error)
}
