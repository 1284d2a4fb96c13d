package auth

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/filmoteka/internal/client/storage"
)

// mockKV implements storage.KeyValueStorage in memory and records the TTL
// of every Set, чтобы тесты могли проверять политику сроков хранения
type mockKV struct {
	values map[string][]byte
	ttls   map[string]time.Duration
	setErr error
}

func newMockKV() *mockKV {
	return &mockKV{
		values: make(map[string][]byte),
		ttls:   make(map[string]time.Duration),
	}
}

func (m *mockKV) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.values[key] = data
	m.ttls[key] = ttl
	return nil
}

func (m *mockKV) Get(ctx context.Context, key string, dest any) error {
	data, ok := m.values[key]
	if !ok {
		return storage.ErrNotFound
	}
	return json.Unmarshal(data, dest)
}

func (m *mockKV) Delete(ctx context.Context, key string) error {
	delete(m.values, key)
	delete(m.ttls, key)
	return nil
}

func (m *mockKV) Clear(ctx context.Context) error {
	m.values = make(map[string][]byte)
	m.ttls = make(map[string]time.Duration)
	return nil
}

func (m *mockKV) Close() error { return nil }

// signedToken выпускает HS256 токен с заданным exp
func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestStore_SaveAndLoadTokens(t *testing.T) {
	ctx := context.Background()
	kv := newMockKV()
	store := NewStore(kv)

	// До сохранения токенов нет
	_, err := store.AccessToken(ctx)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = store.RefreshToken(ctx)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, store.SaveTokens(ctx, "access-token", "refresh-token"))

	access, err := store.AccessToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "access-token", access)

	refresh, err := store.RefreshToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "refresh-token", refresh)
}

func TestStore_DefaultTTLs(t *testing.T) {
	ctx := context.Background()
	kv := newMockKV()
	store := NewStore(kv)

	// Не-JWT access токен получает TTL политики по умолчанию
	require.NoError(t, store.SaveTokens(ctx, "opaque-access", "refresh"))

	assert.Equal(t, defaultAccessTTL, kv.ttls[keyAccessToken])
	assert.Equal(t, defaultRefreshTTL, kv.ttls[keyRefreshToken])
}

func TestStore_AccessTTLDerivedFromJWTExp(t *testing.T) {
	ctx := context.Background()
	kv := newMockKV()
	store := NewStore(kv)

	// exp через 10 минут — короче часовой политики, TTL следует за claim'ом
	token := signedToken(t, time.Now().Add(10*time.Minute))
	require.NoError(t, store.SaveAccessToken(ctx, token))

	ttl := kv.ttls[keyAccessToken]
	assert.Greater(t, ttl, 9*time.Minute)
	assert.LessOrEqual(t, ttl, 10*time.Minute)
}

func TestStore_AccessTTLCappedByPolicy(t *testing.T) {
	ctx := context.Background()
	kv := newMockKV()
	store := NewStore(kv)

	// exp через сутки — дальше политики, TTL остается часовым
	token := signedToken(t, time.Now().Add(24*time.Hour))
	require.NoError(t, store.SaveAccessToken(ctx, token))

	assert.Equal(t, defaultAccessTTL, kv.ttls[keyAccessToken])
}

func TestStore_ExpiredJWTGetsShortTTL(t *testing.T) {
	ctx := context.Background()
	kv := newMockKV()
	store := NewStore(kv)

	// Токен с прошедшим exp не должен занимать хранилище на полный час:
	// каждый запрос с ним обречен на 401 с refresh round trip
	token := signedToken(t, time.Now().Add(-time.Hour))
	require.NoError(t, store.SaveAccessToken(ctx, token))

	assert.Equal(t, expiredAccessTTL, kv.ttls[keyAccessToken])
	assert.Less(t, kv.ttls[keyAccessToken], defaultAccessTTL)
}

func TestStore_CustomTTLOptions(t *testing.T) {
	ctx := context.Background()
	kv := newMockKV()
	store := NewStore(kv,
		WithAccessTTL(5*time.Minute),
		WithRefreshTTL(48*time.Hour),
	)

	require.NoError(t, store.SaveTokens(ctx, "access", "refresh"))

	assert.Equal(t, 5*time.Minute, kv.ttls[keyAccessToken])
	assert.Equal(t, 48*time.Hour, kv.ttls[keyRefreshToken])
}

func TestStore_Clear(t *testing.T) {
	ctx := context.Background()
	kv := newMockKV()
	store := NewStore(kv)

	require.NoError(t, store.SaveTokens(ctx, "access", "refresh"))
	require.NoError(t, store.Clear(ctx))

	_, err := store.AccessToken(ctx)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = store.RefreshToken(ctx)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// Повторный Clear по пустому хранилищу не ошибка
	require.NoError(t, store.Clear(ctx))
}
