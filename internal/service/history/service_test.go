package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//go:generate moq -out kv_store_mock_test.go -pkg history . kvStore

// memStore returns a mock backed by a map.
func memStore(initial map[string][]byte) *kvStoreMock {
	data := map[string][]byte{}
	for k, v := range initial {
		data[k] = v
	}
	return &kvStoreMock{
		GetFunc: func(ctx context.Context, key string) ([]byte, bool, error) {
			v, ok := data[key]
			return v, ok, nil
		},
		PutFunc: func(ctx context.Context, key string, value []byte) error {
			data[key] = value
			return nil
		},
		DeleteFunc: func(ctx context.Context, key string) error {
			delete(data, key)
			return nil
		},
	}
}

func newTestService(t *testing.T, store *kvStoreMock) *Service {
	t.Helper()
	return NewService(slog.Default(), store, DefaultLimit)
}

// ---------------------------------------------------------------------------
// PushFront
// ---------------------------------------------------------------------------

func TestPushFront(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		list  []string
		word  string
		limit int
		want  []string
	}{
		{"empty list", nil, "cat", 10, []string{"cat"}},
		{"prepends", []string{"dog"}, "cat", 10, []string{"cat", "dog"}},
		{"moves existing to front", []string{"dog", "cat", "owl"}, "cat", 10, []string{"cat", "dog", "owl"}},
		{"normalizes word", []string{"dog"}, "  CAT ", 10, []string{"cat", "dog"}},
		{"dedup is case-insensitive", []string{"dog", "cat"}, "Cat", 10, []string{"cat", "dog"}},
		{"truncates", []string{"b", "c", "d"}, "a", 3, []string{"a", "b", "c"}},
		{"empty word ignored", []string{"dog"}, "   ", 10, []string{"dog"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, PushFront(tt.list, tt.word, tt.limit))
		})
	}
}

func TestPushFront_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	list := []string{"dog", "cat"}
	_ = PushFront(list, "cat", 10)

	assert.Equal(t, []string{"dog", "cat"}, list)
}

// ---------------------------------------------------------------------------
// Record / Clear
// ---------------------------------------------------------------------------

func TestRecord_Dedup(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, memStore(nil))
	ctx := context.Background()

	svc.Record(ctx, "cat")
	svc.Record(ctx, "dog")
	got := svc.Record(ctx, "cat")

	assert.Equal(t, []string{"cat", "dog"}, got)
	assert.Equal(t, []string{"cat", "dog"}, svc.Items())
}

func TestRecord_Cap(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, memStore(nil))
	ctx := context.Background()

	var got []string
	for i := 0; i < 11; i++ {
		got = svc.Record(ctx, fmt.Sprintf("word%d", i))
	}

	require.Len(t, got, 10)
	assert.Equal(t, "word10", got[0])
	assert.Equal(t, "word1", got[9])
	assert.NotContains(t, got, "word0")
}

func TestRecord_PersistsJSON(t *testing.T) {
	t.Parallel()

	store := memStore(nil)
	svc := newTestService(t, store)

	svc.Record(context.Background(), "cat")
	svc.Record(context.Background(), "dog")

	calls := store.PutCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, StorageKey, calls[1].Key)
	assert.JSONEq(t, `["dog","cat"]`, string(calls[1].Value))
}

func TestRecord_PersistFailureIsSwallowed(t *testing.T) {
	t.Parallel()

	store := &kvStoreMock{
		PutFunc: func(ctx context.Context, key string, value []byte) error {
			return errors.New("disk full")
		},
	}
	svc := newTestService(t, store)

	got := svc.Record(context.Background(), "cat")

	assert.Equal(t, []string{"cat"}, got)
	assert.Equal(t, []string{"cat"}, svc.Items())
	assert.Len(t, store.PutCalls(), 1)
}

func TestRecord_ReturnsCopy(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, memStore(nil))
	got := svc.Record(context.Background(), "cat")
	got[0] = "mutated"

	assert.Equal(t, []string{"cat"}, svc.Items())
}

func TestClear(t *testing.T) {
	t.Parallel()

	store := memStore(nil)
	svc := newTestService(t, store)
	ctx := context.Background()

	svc.Record(ctx, "cat")
	got := svc.Clear(ctx)

	assert.Empty(t, got)
	assert.NotNil(t, got)
	assert.Empty(t, svc.Items())

	require.Len(t, store.PutCalls(), 1)
	require.Len(t, store.DeleteCalls(), 1)
	assert.Equal(t, StorageKey, store.DeleteCalls()[0].Key)

	_, ok, err := store.Get(ctx, StorageKey)
	require.NoError(t, err)
	assert.False(t, ok, "stored value should be removed")

	reloaded := newTestService(t, store)
	assert.Empty(t, reloaded.Load(ctx))
}

func TestClear_DeleteFailureSwallowed(t *testing.T) {
	t.Parallel()

	store := memStore(nil)
	store.DeleteFunc = func(ctx context.Context, key string) error {
		return errors.New("disk full")
	}
	svc := newTestService(t, store)
	ctx := context.Background()

	svc.Record(ctx, "cat")
	got := svc.Clear(ctx)

	assert.Empty(t, got)
	assert.Empty(t, svc.Items())
}

// ---------------------------------------------------------------------------
// Load
// ---------------------------------------------------------------------------

func TestLoad_Stored(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, memStore(map[string][]byte{
		StorageKey: []byte(`["dog","cat"]`),
	}))

	assert.Equal(t, []string{"dog", "cat"}, svc.Load(context.Background()))
	assert.Equal(t, []string{"dog", "cat"}, svc.Items())
}

func TestLoad_Missing(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, memStore(nil))

	got := svc.Load(context.Background())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLoad_Degrades(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{{{`},
		{"object", `{"a":1}`},
		{"numbers", `[1,2,3]`},
		{"null", `null`},
		{"empty", ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := newTestService(t, memStore(map[string][]byte{StorageKey: []byte(tt.raw)}))
			got := svc.Load(context.Background())

			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestLoad_StoreError(t *testing.T) {
	t.Parallel()

	store := &kvStoreMock{
		GetFunc: func(ctx context.Context, key string) ([]byte, bool, error) {
			return nil, false, errors.New("database is locked")
		},
	}
	svc := newTestService(t, store)

	assert.Empty(t, svc.Load(context.Background()))
}

func TestLoad_Sanitizes(t *testing.T) {
	t.Parallel()

	stored := `["Dog"," cat ","dog","","a","b","c","d","e","f","g","h","i"]`
	svc := newTestService(t, memStore(map[string][]byte{StorageKey: []byte(stored)}))

	got := svc.Load(context.Background())

	assert.Equal(t, []string{"dog", "cat", "a", "b", "c", "d", "e", "f", "g", "h"}, got)
}

func TestLoad_ThenRecord(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, memStore(map[string][]byte{
		StorageKey: []byte(`["dog","cat"]`),
	}))
	ctx := context.Background()

	svc.Load(ctx)
	assert.Equal(t, []string{"cat", "dog"}, svc.Record(ctx, "cat"))
}

func TestNewService_DefaultLimit(t *testing.T) {
	t.Parallel()

	svc := NewService(slog.Default(), memStore(nil), 0)
	assert.Equal(t, DefaultLimit, svc.limit)
}

func TestNewService_LimitCappedAtDefault(t *testing.T) {
	t.Parallel()

	store := memStore(nil)
	svc := NewService(slog.Default(), store, 50)
	require.Equal(t, DefaultLimit, svc.limit)

	ctx := context.Background()
	for i := 0; i < 15; i++ {
		svc.Record(ctx, fmt.Sprintf("word%02d", i))
	}
	assert.Len(t, svc.Items(), DefaultLimit)

	var stored []string
	raw, ok, err := store.Get(ctx, StorageKey)
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, json.Unmarshal(raw, &stored))
	assert.Len(t, stored, DefaultLimit)
	assert.Equal(t, "word14", stored[0])
}
