package registry_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aretw0/sift"
	"github.com/aretw0/sift/pkg/adapters/memory"
	"github.com/aretw0/sift/pkg/issue"
	"github.com/aretw0/sift/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userDoc = `
name: user
type: object
fields:
  name:
    type: string
    min: 1
  role:
    type: ref
    ref: role
`

const roleDoc = `
name: role
type: enum
values: [admin, member]
`

func TestRegistryLoad(t *testing.T) {
	loader := memory.NewLoader(map[string]string{
		"user": userDoc,
		"role": roleDoc,
	})
	reg := registry.New(registry.WithLoader(loader))
	require.NoError(t, reg.Load(context.Background()))

	assert.Equal(t, []string{"role", "user"}, reg.List())

	user, err := reg.Get("user")
	require.NoError(t, err)

	t.Run("Refs resolve across documents", func(t *testing.T) {
		_, err := sift.Parse(user, map[string]any{"name": "ada", "role": "admin"})
		assert.NoError(t, err)

		_, err = sift.Parse(user, map[string]any{"name": "ada", "role": "root"})
		var verr *issue.Error
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, issue.CodeInvalidEnumValue, verr.Issues[0].Code)
		assert.Equal(t, "role", verr.Issues[0].Path.String())
	})

	t.Run("Source returns the raw document", func(t *testing.T) {
		raw, err := reg.Source("role")
		require.NoError(t, err)
		assert.Contains(t, string(raw), "values:")
	})
}

func TestRegistryRejectsDanglingRefs(t *testing.T) {
	loader := memory.NewLoader(map[string]string{
		"user": userDoc, // references role, which is absent
	})
	reg := registry.New(registry.WithLoader(loader))

	err := reg.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "references unknown schema 'role'")

	_, err = reg.Get("user")
	assert.Error(t, err, "a failed load registers nothing")
}

func TestRegistrySelfReference(t *testing.T) {
	loader := memory.NewLoader(map[string]string{
		"node": `
name: node
type: object
fields:
  value:
    type: string
  children:
    type: array
    optional: true
    items:
      type: ref
      ref: node
`,
	})
	reg := registry.New(registry.WithLoader(loader))
	require.NoError(t, reg.Load(context.Background()))

	node, err := reg.Get("node")
	require.NoError(t, err)

	_, err = sift.Parse(node, map[string]any{
		"value": "root",
		"children": []any{
			map[string]any{"value": "leaf"},
			map[string]any{"value": "branch", "children": []any{
				map[string]any{"value": 7},
			}},
		},
	})
	var verr *issue.Error
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Issues, 1)
	assert.Equal(t, "children[1].children[0].value", verr.Issues[0].Path.String())
}

func TestRegistryManualRegister(t *testing.T) {
	reg := registry.New()
	reg.Register("port", sift.Int().Min(1).Max(65535))

	s, err := reg.Get("port")
	require.NoError(t, err)
	_, err = sift.Parse(s, 443)
	assert.NoError(t, err)

	_, err = reg.Source("port")
	assert.Error(t, err, "manual registrations carry no document")
}

func TestRegistryLoadWithoutLoader(t *testing.T) {
	reg := registry.New()
	assert.ErrorContains(t, reg.Load(context.Background()), "no loader configured")
}

// watchableLoader is a SchemaLoader whose content can be swapped at
// runtime and which reports changes over a channel.
type watchableLoader struct {
	mu   sync.Mutex
	docs map[string]string
	ch   chan string
}

func newWatchableLoader(docs map[string]string) *watchableLoader {
	return &watchableLoader{docs: docs, ch: make(chan string, 1)}
}

func (l *watchableLoader) GetSchema(id string) ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	doc, ok := l.docs[id]
	if !ok {
		return nil, assert.AnError
	}
	return []byte(doc), nil
}

func (l *watchableLoader) ListSchemas() ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	ids := make([]string, 0, len(l.docs))
	for id := range l.docs {
		ids = append(ids, id)
	}
	return ids, nil
}

func (l *watchableLoader) Watch(ctx context.Context) (<-chan string, error) {
	return l.ch, nil
}

func (l *watchableLoader) update(id, doc string) {
	l.mu.Lock()
	l.docs[id] = doc
	l.mu.Unlock()
	l.ch <- id
}

func TestRegistryWatchReloads(t *testing.T) {
	loader := newWatchableLoader(map[string]string{
		"port": "name: port\ntype: int\nmin: 1",
	})
	reg := registry.New(registry.WithLoader(loader))
	require.NoError(t, reg.Load(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := reg.Watch(ctx)
	require.NoError(t, err)

	// Tighten the constraint and wait for the reload to land.
	loader.update("port", "name: port\ntype: int\nmin: 1024")

	select {
	case id := <-events:
		assert.Equal(t, "port", id)
	case <-time.After(2 * time.Second):
		t.Fatal("no reload event received")
	}

	s, err := reg.Get("port")
	require.NoError(t, err)
	_, err = sift.Parse(s, 80)
	assert.Error(t, err, "the reloaded schema rejects low ports")
}

func TestRegistryWatchRequiresWatchableLoader(t *testing.T) {
	reg := registry.New(registry.WithLoader(memory.NewLoader(nil)))
	_, err := reg.Watch(context.Background())
	assert.ErrorContains(t, err, "does not support watching")
}
