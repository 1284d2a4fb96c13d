package storage

import (
	"context"
	"time"
)

// KeyValueStorage defines interface for persistent client-side key/value
// storage with optional TTL. This is the lowest storage layer: values are
// serialized as-is, no encryption or interpretation happens here.
//
// Абсентность значения — первоклассный исход, не исключение: Get возвращает
// ErrNotFound если ключ никогда не записывался, истек по TTL или запись в
// хранилище повреждена (битый payload молча считается отсутствующим).
type KeyValueStorage interface {
	// Set stores a JSON-serializable value under key.
	// ttl == 0 means the value never expires.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	// Get reads the value stored under key into dest.
	// Returns ErrNotFound if the key is absent, expired or corrupt.
	Get(ctx context.Context, key string, dest any) error

	// Delete removes the value stored under key. Deleting a missing key
	// is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes all keys of this store and nothing else: data of other
	// consumers sharing the same medium stays intact.
	Clear(ctx context.Context) error

	// Close releases the underlying storage medium.
	Close() error
}
