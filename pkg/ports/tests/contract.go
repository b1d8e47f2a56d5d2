package tests

import (
	"testing"

	"github.com/aretw0/sift/pkg/ports"
)

// SchemaLoaderContractTest is a reusable test suite that verifies if an adapter complies with ports.SchemaLoader.
func SchemaLoaderContractTest(t *testing.T, loader ports.SchemaLoader, setupData map[string][]byte) {
	t.Helper()

	// 1. Test GetSchema (Success)
	t.Run("GetSchema_Success", func(t *testing.T) {
		for id, expectedContent := range setupData {
			content, err := loader.GetSchema(id)
			if err != nil {
				t.Fatalf("unexpected error getting schema %s: %v", id, err)
			}
			if string(content) != string(expectedContent) {
				t.Errorf("content mismatch for %s. got %q, want %q", id, content, expectedContent)
			}
		}
	})

	// 2. Test GetSchema (NotFound)
	t.Run("GetSchema_NotFound", func(t *testing.T) {
		_, err := loader.GetSchema("non-existent-schema")
		if err == nil {
			t.Error("expected error for non-existent schema, got nil")
		}
	})

	// 3. Test ListSchemas
	t.Run("ListSchemas", func(t *testing.T) {
		ids, err := loader.ListSchemas()
		if err != nil {
			t.Fatalf("unexpected error listing schemas: %v", err)
		}

		if len(ids) != len(setupData) {
			t.Errorf("expected %d schemas, got %d", len(setupData), len(ids))
		}

		// Verify all expected IDs are present
		lookup := make(map[string]bool)
		for _, id := range ids {
			lookup[id] = true
		}

		for id := range setupData {
			if !lookup[id] {
				t.Errorf("schema %s missing from list", id)
			}
		}
	})
}
