package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rocketscienceinc/tictactoe-series/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testKeyValue - behaviour every backend must share.
func testKeyValue(ctx context.Context, t *testing.T, kv KeyValue) {
	t.Helper()

	t.Run("Get_NotFound", func(t *testing.T) {
		// When: Get is called with a key that was never set
		value, err := kv.Get(ctx, "missing")

		// Then: ErrKeyNotFound is returned
		require.ErrorIs(t, err, ErrKeyNotFound)
		assert.Empty(t, value)
	})

	t.Run("Set_Then_Get", func(t *testing.T) {
		// Given: a stored value
		require.NoError(t, kv.Set(ctx, "state", `{"a":1}`))

		// When: Get is called with the same key
		value, err := kv.Get(ctx, "state")

		// Then: the stored value is returned
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, value)
	})

	t.Run("Set_Overwrites", func(t *testing.T) {
		// Given: a key written twice
		require.NoError(t, kv.Set(ctx, "state", "first"))
		require.NoError(t, kv.Set(ctx, "state", "second"))

		// When: reading it back
		value, err := kv.Get(ctx, "state")

		// Then: the last write wins
		require.NoError(t, err)
		assert.Equal(t, "second", value)
	})

	t.Run("Empty value is kept", func(t *testing.T) {
		require.NoError(t, kv.Set(ctx, "empty", ""))

		value, err := kv.Get(ctx, "empty")

		require.NoError(t, err)
		assert.Empty(t, value)
	})
}

func TestMemoryStorage(t *testing.T) {
	kv := NewMemoryStorage()
	t.Cleanup(func() { _ = kv.Close() })

	testKeyValue(context.Background(), t, kv)
}

func TestSQLiteStorage(t *testing.T) {
	ctx := context.Background()

	kv, err := NewSQLiteStorage(ctx, filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	testKeyValue(ctx, t, kv)
}

func TestSQLiteStorage_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kv.db")

	// Given: a value written by one connection
	kv, err := NewSQLiteStorage(ctx, path)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "state", "saved"))
	require.NoError(t, kv.Close())

	// When: the database is opened again
	reopened, err := NewSQLiteStorage(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	// Then: the value survived
	value, err := reopened.Get(ctx, "state")
	require.NoError(t, err)
	assert.Equal(t, "saved", value)
}

func TestNew(t *testing.T) {
	ctx := context.Background()

	t.Run("Memory by default", func(t *testing.T) {
		kv, err := New(ctx, &config.Config{})

		require.NoError(t, err)
		assert.IsType(t, &MemoryStorage{}, kv)
	})

	t.Run("SQLite", func(t *testing.T) {
		conf := &config.Config{
			Storage:           config.Storage{Driver: config.StorageSQLite},
			SQLiteStoragePath: filepath.Join(t.TempDir(), "kv.db"),
		}

		kv, err := New(ctx, conf)
		require.NoError(t, err)
		t.Cleanup(func() { _ = kv.Close() })

		assert.IsType(t, &SQLiteStorage{}, kv)
	})

	t.Run("SQLite without path", func(t *testing.T) {
		conf := &config.Config{Storage: config.Storage{Driver: config.StorageSQLite}}

		_, err := New(ctx, conf)

		require.ErrorIs(t, err, ErrPathNotProvided)
	})

	t.Run("Redis without address", func(t *testing.T) {
		conf := &config.Config{Storage: config.Storage{Driver: config.StorageRedis}}

		_, err := New(ctx, conf)

		require.ErrorIs(t, err, ErrAddrNotFound)
	})

	t.Run("Unknown driver", func(t *testing.T) {
		conf := &config.Config{Storage: config.Storage{Driver: "etcd"}}

		_, err := New(ctx, conf)

		require.ErrorIs(t, err, ErrUnknownDriver)
	})
}
