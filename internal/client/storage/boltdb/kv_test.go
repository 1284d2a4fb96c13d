package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/filmoteka/internal/client/storage"
)

// создаем тестовое BoltDB хранилище во временной директории
func createTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "kv_test.db")

	ctx := context.Background()
	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestStorage_SetGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	// До записи — ErrNotFound
	var missing payload
	err := store.Get(ctx, "missing", &missing)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	want := payload{Name: "movies", Count: 42}
	require.NoError(t, store.Set(ctx, "data", want, 0))

	var got payload
	require.NoError(t, store.Get(ctx, "data", &got))
	assert.Equal(t, want, got)

	// Перезапись заменяет значение
	want2 := payload{Name: "series", Count: 7}
	require.NoError(t, store.Set(ctx, "data", want2, 0))
	require.NoError(t, store.Get(ctx, "data", &got))
	assert.Equal(t, want2, got)
}

func TestStorage_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.Set(ctx, "short", "value", time.Second))

	// Сразу после записи значение читается
	var got string
	require.NoError(t, store.Get(ctx, "short", &got))
	assert.Equal(t, "value", got)

	// TTL хранится с секундной гранулярностью, ждем гарантированного истечения
	time.Sleep(2100 * time.Millisecond)

	err := store.Get(ctx, "short", &got)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStorage_CorruptValueReadsAsAbsent(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Пишем заведомо битый payload напрямую в bucket, минуя Set
	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketKV).Put([]byte("broken"), []byte("{not json"))
	})
	require.NoError(t, err)

	var got string
	err = store.Get(ctx, "broken", &got)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStorage_ValueTypeMismatchReadsAsAbsent(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.Set(ctx, "number", 123, 0))

	// Значение есть, но в dest другого типа не декодируется — absent
	var got struct{ Name string }
	err := store.Get(ctx, "number", &got)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStorage_Delete(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.Set(ctx, "key", "value", 0))
	require.NoError(t, store.Delete(ctx, "key"))

	var got string
	err := store.Get(ctx, "key", &got)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// Удаление отсутствующего ключа не ошибка
	require.NoError(t, store.Delete(ctx, "key"))
}

func TestStorage_ClearLeavesForeignBucketsIntact(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	foreignBucket := []byte("someone_else")

	// Чужой bucket в том же файле
	err := store.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(foreignBucket)
		if err != nil {
			return err
		}
		return bucket.Put([]byte("foreign"), []byte("data"))
	})
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, "ours", "value", 0))
	require.NoError(t, store.Clear(ctx))

	// Наш ключ исчез
	var got string
	assert.ErrorIs(t, store.Get(ctx, "ours", &got), storage.ErrNotFound)

	// Чужие данные не тронуты
	err = store.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(foreignBucket).Get([]byte("foreign"))
		assert.Equal(t, []byte("data"), data)
		return nil
	})
	require.NoError(t, err)

	// Хранилище работоспособно после Clear
	require.NoError(t, store.Set(ctx, "after", "clear", 0))
	require.NoError(t, store.Get(ctx, "after", &got))
	assert.Equal(t, "clear", got)
}
