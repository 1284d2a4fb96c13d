package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iudanet/filmoteka/internal/client/api"
	"github.com/iudanet/filmoteka/internal/client/storage"
)

// Ключи токенов в kv-хранилище. Токены живут только здесь; остальной код
// видит их лишь транзиентно, в момент навешивания на запрос.
const (
	keyAccessToken  = "auth.access_token"
	keyRefreshToken = "auth.refresh_token"
)

// TTL по умолчанию — политика клиента, не протокол:
// access живет около часа, refresh около недели.
const (
	defaultAccessTTL  = time.Hour
	defaultRefreshTTL = 7 * 24 * time.Hour

	// Срок хранения access токена, который уже протух по exp: держать его
	// целый час нет смысла, каждый запрос с ним гарантированно ловит 401
	expiredAccessTTL = time.Minute
)

// Store implements api.TokenStore on top of the generic kv storage.
// Для access токена срок хранения выводится из exp claim'а JWT, если тот
// читается и короче политики; подпись при этом не проверяется — хранилищу
// важен только срок, валидностью токена занимается сервер.
type Store struct {
	kv         storage.KeyValueStorage
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// Compile-time check that Store implements api.TokenStore
var _ api.TokenStore = (*Store)(nil)

// StoreOption настраивает Store
type StoreOption func(*Store)

// WithAccessTTL overrides the default access token TTL
func WithAccessTTL(ttl time.Duration) StoreOption {
	return func(s *Store) { s.accessTTL = ttl }
}

// WithRefreshTTL overrides the default refresh token TTL
func WithRefreshTTL(ttl time.Duration) StoreOption {
	return func(s *Store) { s.refreshTTL = ttl }
}

// NewStore creates a token store over kv storage
func NewStore(kv storage.KeyValueStorage, opts ...StoreOption) *Store {
	s := &Store{
		kv:         kv,
		accessTTL:  defaultAccessTTL,
		refreshTTL: defaultRefreshTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AccessToken returns the stored access token.
// Returns storage.ErrNotFound if absent or expired.
func (s *Store) AccessToken(ctx context.Context) (string, error) {
	var token string
	if err := s.kv.Get(ctx, keyAccessToken, &token); err != nil {
		return "", err
	}
	return token, nil
}

// RefreshToken returns the stored refresh token.
// Returns storage.ErrNotFound if absent or expired.
func (s *Store) RefreshToken(ctx context.Context) (string, error) {
	var token string
	if err := s.kv.Get(ctx, keyRefreshToken, &token); err != nil {
		return "", err
	}
	return token, nil
}

// SaveAccessToken persists a freshly minted access token
func (s *Store) SaveAccessToken(ctx context.Context, access string) error {
	if err := s.kv.Set(ctx, keyAccessToken, access, s.accessTokenTTL(access)); err != nil {
		return fmt.Errorf("failed to save access token: %w", err)
	}
	return nil
}

// SaveTokens persists both tokens of a new session
func (s *Store) SaveTokens(ctx context.Context, access, refresh string) error {
	if err := s.SaveAccessToken(ctx, access); err != nil {
		return err
	}
	if err := s.kv.Set(ctx, keyRefreshToken, refresh, s.refreshTTL); err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}
	return nil
}

// Clear removes both tokens. Отсутствие токенов ошибкой не считается.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, keyAccessToken); err != nil {
		return fmt.Errorf("failed to delete access token: %w", err)
	}
	if err := s.kv.Delete(ctx, keyRefreshToken); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}

// accessTokenTTL выводит срок хранения access токена: exp claim, если он
// есть и наступает раньше политики, иначе TTL по умолчанию; уже протухший
// exp дает короткий срок, чтобы токен быстро прочитался как отсутствующий
func (s *Store) accessTokenTTL(access string) time.Duration {
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(access, &claims); err != nil {
		return s.accessTTL
	}
	if claims.ExpiresAt == nil {
		return s.accessTTL
	}

	until := time.Until(claims.ExpiresAt.Time)
	switch {
	case until <= 0:
		return expiredAccessTTL
	case until >= s.accessTTL:
		return s.accessTTL
	}
	return until
}
