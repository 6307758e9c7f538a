package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schemaforge/pkg/database"
)

func testKVs(t *testing.T) map[string]KV {
	t.Helper()

	db, err := database.Open(database.Config{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.Migrate(db))

	return map[string]KV{
		"memory": NewMemoryKV(),
		"sqlite": NewSQLiteKV(db),
	}
}

func TestKVRoundtrip(t *testing.T) {
	ctx := context.Background()

	for name, kv := range testKVs(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := kv.Get(ctx, "missing")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, kv.Set(ctx, "k", `{"a":1}`))
			v, ok, err := kv.Get(ctx, "k")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `{"a":1}`, v)

			// set is an upsert
			require.NoError(t, kv.Set(ctx, "k", `{"a":2}`))
			v, _, err = kv.Get(ctx, "k")
			require.NoError(t, err)
			assert.Equal(t, `{"a":2}`, v)

			require.NoError(t, kv.Delete(ctx, "k"))
			_, ok, err = kv.Get(ctx, "k")
			require.NoError(t, err)
			assert.False(t, ok)

			// deleting an absent key is not an error
			assert.NoError(t, kv.Delete(ctx, "k"))
		})
	}
}
