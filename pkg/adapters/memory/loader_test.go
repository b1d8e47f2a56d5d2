package memory_test

import (
	"testing"

	"github.com/aretw0/sift/pkg/adapters/memory"
	contract "github.com/aretw0/sift/pkg/ports/tests"
)

func TestInMemoryLoader_Contract(t *testing.T) {
	data := map[string]string{
		"user": `name: user
type: object
fields:
  name: {type: string}`,
		"port": `name: port
type: int
min: 1
max: 65535`,
	}

	// The contract helper compares raw bytes, so mirror the seed map.
	bytesData := make(map[string][]byte)
	for k, v := range data {
		bytesData[k] = []byte(v)
	}

	loader := memory.NewLoader(data)

	contract.SchemaLoaderContractTest(t, loader, bytesData)
}

func TestInMemoryLoader_ListIsSorted(t *testing.T) {
	loader := memory.NewLoader(map[string]string{
		"zeta":  "type: string",
		"alpha": "type: string",
		"milk":  "type: string",
	})

	ids, err := loader.ListSchemas()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"alpha", "milk", "zeta"}
	if len(ids) != len(want) {
		t.Fatalf("expected %d ids, got %d", len(want), len(ids))
	}
	for i, id := range want {
		if ids[i] != id {
			t.Errorf("position %d: got %q, want %q", i, ids[i], id)
		}
	}
}
