package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/filmoteka/internal/client/storage"
)

// envelope оборачивает сохраняемое значение вместе со сроком годности
type envelope struct {
	Value     json.RawMessage `json:"value"`
	ExpiresAt int64           `json:"expires_at,omitempty"` // unix seconds, 0 = бессрочно
}

// Set stores a JSON-serializable value under key with an optional TTL
func (s *Storage) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	env := envelope{Value: raw}
	if ttl > 0 {
		env.ExpiresAt = time.Now().Add(ttl).Unix()
	}

	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to marshal envelope: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketKV)
		if bucket == nil {
			return fmt.Errorf("kv bucket not found")
		}
		if err := bucket.Put([]byte(key), data); err != nil {
			return fmt.Errorf("failed to save value: %w", err)
		}
		return nil
	})
}

// Get reads the value stored under key into dest.
// Отсутствие, истекший TTL и битый payload — один и тот же исход: ErrNotFound.
func (s *Storage) Get(ctx context.Context, key string, dest any) error {
	var raw json.RawMessage

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketKV)
		if bucket == nil {
			return fmt.Errorf("kv bucket not found")
		}

		data := bucket.Get([]byte(key))
		if data == nil {
			return storage.ErrNotFound
		}

		var env envelope
		if err := json.Unmarshal(data, &env); err != nil {
			// Битая запись читается как отсутствующая
			return storage.ErrNotFound
		}

		if env.ExpiresAt > 0 && time.Now().Unix() >= env.ExpiresAt {
			return storage.ErrNotFound
		}

		raw = env.Value
		return nil
	})
	if err != nil {
		return err
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return storage.ErrNotFound
	}
	return nil
}

// Delete removes the value stored under key
func (s *Storage) Delete(ctx context.Context, key string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketKV)
		if bucket == nil {
			return fmt.Errorf("kv bucket not found")
		}
		if err := bucket.Delete([]byte(key)); err != nil {
			return fmt.Errorf("failed to delete value: %w", err)
		}
		return nil
	})
}

// Clear removes every key of the client bucket. Другие bucket'ы в том же
// файле (если кто-то делит базу с нами) остаются нетронутыми.
func (s *Storage) Clear(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketKV); err != nil {
			return fmt.Errorf("failed to delete kv bucket: %w", err)
		}
		if _, err := tx.CreateBucketIfNotExists(bucketKV); err != nil {
			return fmt.Errorf("failed to recreate kv bucket: %w", err)
		}
		return nil
	})
}
