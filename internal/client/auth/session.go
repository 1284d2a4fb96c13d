package auth

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/iudanet/filmoteka/internal/client/api"
	"github.com/iudanet/filmoteka/internal/validation"
	pkgapi "github.com/iudanet/filmoteka/pkg/api"
)

// State представляет состояние сессии
type State int

const (
	// StateUnknown — начальное состояние до bootstrap
	StateUnknown State = iota
	// StateAnonymous — пользователя нет
	StateAnonymous
	// StateAuthenticated — пользователь залогинен, профиль загружен
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Client defines what the session needs from the API client
type Client interface {
	// Login authenticates with email + password
	Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.AuthResponse, error)

	// Register creates a new account
	Register(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.AuthResponse, error)

	// Logout notifies the server (refresh token blacklist)
	Logout(ctx context.Context) error

	// Profile fetches the current user profile
	Profile(ctx context.Context) (*pkgapi.User, error)

	// UpdateProfile partially updates the current user profile
	UpdateProfile(ctx context.Context, req pkgapi.ProfileUpdateRequest) (*pkgapi.User, error)
}

// Compile-time check that the real client satisfies the interface
var _ Client = (*api.Client)(nil)

// Session — единственный владелец состояния "кто залогинен".
// Создается один раз на старте приложения и передается явно всем, кому
// нужно читать или менять состояние; никаких глобальных синглтонов.
// Переходы: Unknown → Anonymous ⇄ Authenticated.
type Session struct {
	api    Client
	tokens api.TokenStore

	mu      sync.RWMutex
	state   State
	user    *pkgapi.User
	loading bool
	subs    []func(State)
}

// NewSession creates a session controller.
// Регистрирует себя обработчиком session-invalidated сигнала шлюза,
// если клиент его поддерживает.
func NewSession(apiClient Client, tokens api.TokenStore) *Session {
	s := &Session{
		api:     apiClient,
		tokens:  tokens,
		state:   StateUnknown,
		loading: true,
	}

	// Шлюз чистит токены сам; сессии остается только перейти в Anonymous
	if c, ok := apiClient.(*api.Client); ok {
		c.SetSessionInvalidHandler(s.handleSessionInvalid)
	}

	return s
}

// State returns the current session state
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// User returns the current user profile or nil
func (s *Session) User() *pkgapi.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// IsAuthenticated производно от наличия пользователя
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// Loading reports whether bootstrap is still in progress
func (s *Session) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Subscribe registers a callback invoked on every state transition.
// Колбэк вызывается вне блокировки.
func (s *Session) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Bootstrap восстанавливает сессию на старте: если в хранилище есть access
// токен — пробует загрузить профиль, иначе сразу Anonymous без похода в
// сеть. Всегда заканчивается с loading == false.
func (s *Session) Bootstrap(ctx context.Context) {
	defer s.finishLoading()

	if _, err := s.tokens.AccessToken(ctx); err != nil {
		s.setState(StateAnonymous, nil)
		return
	}

	user, err := s.api.Profile(ctx)
	if err != nil {
		slog.Debug("bootstrap profile fetch failed", "error", err)
		s.setState(StateAnonymous, nil)
		return
	}

	s.setState(StateAuthenticated, user)
}

// Login аутентифицирует пользователя. Ошибки login уходят наверх
// нетронутыми — UI показывает message и пополевые errors как есть.
func (s *Session) Login(ctx context.Context, email, password string) error {
	if err := validation.ValidateEmail(email); err != nil {
		return fmt.Errorf("invalid email: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.api.Login(ctx, pkgapi.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		s.setState(StateAnonymous, nil)
		return err
	}

	return s.establish(ctx, resp)
}

// Register создает аккаунт. Сервер возвращает токены сразу, поэтому
// успешная регистрация переводит сессию прямо в Authenticated.
func (s *Session) Register(ctx context.Context, req pkgapi.RegisterRequest) error {
	if err := validation.ValidateEmail(req.Email); err != nil {
		return fmt.Errorf("invalid email: %w", err)
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}
	if req.Password != req.PasswordConfirm {
		return fmt.Errorf("passwords don't match")
	}

	resp, err := s.api.Register(ctx, req)
	if err != nil {
		s.setState(StateAnonymous, nil)
		return err
	}

	return s.establish(ctx, resp)
}

// establish сохраняет токены и переводит сессию в Authenticated.
// Authenticated без валидированного профиля не бывает: если сервер не
// вложил профиль в ответ, он загружается отдельным запросом.
func (s *Session) establish(ctx context.Context, resp *pkgapi.AuthResponse) error {
	if err := s.tokens.SaveTokens(ctx, resp.Access, resp.Refresh); err != nil {
		s.setState(StateAnonymous, nil)
		return fmt.Errorf("failed to save tokens: %w", err)
	}

	user := resp.User
	if user == nil {
		fetched, err := s.api.Profile(ctx)
		if err != nil {
			s.setState(StateAnonymous, nil)
			return err
		}
		user = fetched
	}

	s.setState(StateAuthenticated, user)
	return nil
}

// Logout завершает сессию. Серверный вызов — best effort: его ошибки
// логируются и глотаются, локально logout успешен всегда.
func (s *Session) Logout(ctx context.Context) error {
	if err := s.api.Logout(ctx); err != nil {
		slog.Warn("failed to logout on server", "error", err)
	}

	if err := s.tokens.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear tokens: %w", err)
	}

	s.setState(StateAnonymous, nil)
	return nil
}

// RefreshProfile перечитывает профиль уже аутентифицированной сессии.
// Неудача сама по себе не роняет сессию в Anonymous — это делает только
// session-invalidated сигнал шлюза.
func (s *Session) RefreshProfile(ctx context.Context) error {
	user, err := s.api.Profile(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	if s.state == StateAuthenticated {
		s.user = user
	}
	s.mu.Unlock()
	return nil
}

// UpdateProfile отправляет изменения профиля и обновляет локальную копию
func (s *Session) UpdateProfile(ctx context.Context, req pkgapi.ProfileUpdateRequest) error {
	user, err := s.api.UpdateProfile(ctx, req)
	if err != nil {
		return err
	}

	s.mu.Lock()
	if s.state == StateAuthenticated {
		s.user = user
	}
	s.mu.Unlock()
	return nil
}

// handleSessionInvalid — безусловный переход в Anonymous по сигналу шлюза.
// Токены уже вычищены шлюзом, серверный round trip не нужен.
func (s *Session) handleSessionInvalid() {
	s.setState(StateAnonymous, nil)
}

func (s *Session) finishLoading() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

// setState меняет состояние и уведомляет подписчиков вне блокировки
func (s *Session) setState(state State, user *pkgapi.User) {
	s.mu.Lock()
	changed := s.state != state
	s.state = state
	s.user = user
	subs := make([]func(State), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	if !changed {
		return
	}
	for _, fn := range subs {
		fn(state)
	}
}
