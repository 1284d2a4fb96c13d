package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	pkgapi "github.com/iudanet/filmoteka/pkg/api"
)

// Пути auth endpoint'ов. Login, register и refresh не несут bearer
// заголовок даже при наличии протухшего токена в хранилище.
const (
	pathRegister = "/api/auth/register/"
	pathLogin    = "/api/auth/login/"
	pathLogout   = "/api/auth/logout/"
	pathProfile  = "/api/auth/profile/"
	pathRefresh  = "/api/auth/token/refresh/"
)

const defaultTimeout = 30 * time.Second

// TokenStore defines what the client needs from token storage.
// Отсутствующий токен сигнализируется через storage.ErrNotFound.
type TokenStore interface {
	// AccessToken returns the stored access token
	AccessToken(ctx context.Context) (string, error)

	// RefreshToken returns the stored refresh token
	RefreshToken(ctx context.Context) (string, error)

	// SaveAccessToken persists a freshly minted access token
	SaveAccessToken(ctx context.Context, access string) error

	// SaveTokens persists both tokens of a new session
	SaveTokens(ctx context.Context, access, refresh string) error

	// Clear removes both tokens
	Clear(ctx context.Context) error
}

// Client представляет HTTP клиент для взаимодействия с сервером каталога.
// Это единственная точка выхода наружу: навешивание bearer заголовка,
// нормализация ошибок и протокол refresh-and-retry живут только здесь,
// вызывающий код их не реализует.
type Client struct {
	httpClient       *http.Client
	tokens           TokenStore
	onSessionInvalid func()
	baseURL          string
}

// NewClient создает новый API клиент.
// timeout <= 0 означает таймаут по умолчанию (30s); один и тот же таймаут
// применяется ко всем запросам, включая refresh и повтор.
func NewClient(baseURL string, tokens TokenStore, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// SetSessionInvalidHandler registers a callback invoked after the client
// clears tokens due to an irrecoverable auth failure (no refresh token, or
// refresh itself failed). Вызывается после очистки хранилища, без
// обращения к серверу.
func (c *Client) SetSessionInvalidHandler(fn func()) {
	c.onSessionInvalid = fn
}

// request описывает один исходящий вызов
type request struct {
	body        any    // JSON-сериализуемое тело
	result      any    // указатель для декодирования успешного ответа
	method      string
	path        string
	contentType string // для raw тела; для body всегда application/json
	query       url.Values
	raw         []byte // готовое тело (multipart), взаимоисключимо с body
	noAuth      bool   // true для login/register/refresh
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.AuthResponse, error) {
	var resp pkgapi.AuthResponse
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   pathLogin,
		body:   req,
		noAuth: true,
		result: &resp,
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.AuthResponse, error) {
	var resp pkgapi.AuthResponse
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   pathRegister,
		body:   req,
		noAuth: true,
		result: &resp,
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout уведомляет сервер о выходе (блеклист refresh токена).
// Локальную очистку хранилища выполняет вызывающая сторона.
func (c *Client) Logout(ctx context.Context) error {
	refresh, err := c.tokens.RefreshToken(ctx)
	if err != nil {
		return fmt.Errorf("no refresh token for logout: %w", err)
	}
	return c.do(ctx, request{
		method: http.MethodPost,
		path:   pathLogout,
		body:   pkgapi.LogoutRequest{Refresh: refresh},
	})
}

// Profile получает профиль текущего пользователя
func (c *Client) Profile(ctx context.Context) (*pkgapi.User, error) {
	var user pkgapi.User
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   pathProfile,
		result: &user,
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile частично обновляет профиль текущего пользователя
func (c *Client) UpdateProfile(ctx context.Context, req pkgapi.ProfileUpdateRequest) (*pkgapi.User, error) {
	var user pkgapi.User
	err := c.do(ctx, request{
		method: http.MethodPut,
		path:   pathProfile,
		body:   req,
		result: &user,
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Get выполняет авторизованный GET запрос
func (c *Client) Get(ctx context.Context, path string, query url.Values, result any) error {
	return c.do(ctx, request{
		method: http.MethodGet,
		path:   path,
		query:  query,
		result: result,
	})
}

// Post выполняет авторизованный POST запрос с JSON телом
func (c *Client) Post(ctx context.Context, path string, body, result any) error {
	return c.do(ctx, request{
		method: http.MethodPost,
		path:   path,
		body:   body,
		result: result,
	})
}

// Put выполняет авторизованный PUT запрос с JSON телом
func (c *Client) Put(ctx context.Context, path string, body, result any) error {
	return c.do(ctx, request{
		method: http.MethodPut,
		path:   path,
		body:   body,
		result: result,
	})
}

// Delete выполняет авторизованный DELETE запрос.
// Успешный ответ обычно 204 без тела.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, request{
		method: http.MethodDelete,
		path:   path,
	})
}

// Upload выполняет авторизованный multipart запрос с одним файловым полем.
// Тело буферизуется целиком, чтобы повтор после refresh отправил ровно
// тот же payload.
func (c *Client) Upload(ctx context.Context, method, path, field, filename string, file io.Reader, result any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("failed to read upload file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	return c.do(ctx, request{
		method:      method,
		path:        path,
		raw:         buf.Bytes(),
		contentType: writer.FormDataContentType(),
		result:      result,
	})
}

// do сериализует тело один раз и запускает конвейер отправки.
// Счетчик попыток передается явно: один логический вызов повторяется после
// refresh не более одного раза, сколько бы 401 он ни собрал после повтора.
func (c *Client) do(ctx context.Context, req request) error {
	payload := req.raw
	contentType := req.contentType

	if req.body != nil {
		data, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		payload = data
		contentType = "application/json"
	}

	return c.send(ctx, req, payload, contentType, 0)
}

// send выполняет одну попытку запроса; attempt == 0 — первичная отправка,
// attempt == 1 — повтор после успешного refresh
func (c *Client) send(ctx context.Context, req request, payload []byte, contentType string, attempt int) error {
	rawURL := c.baseURL + req.path
	if len(req.query) > 0 {
		rawURL += "?" + req.query.Encode()
	}

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, rawURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	httpReq.Header.Set("X-Request-ID", uuid.NewString())

	// Login/register/refresh не несут bearer даже при протухшем токене
	if !req.noAuth {
		if access, err := c.tokens.AccessToken(ctx); err == nil && access != "" {
			httpReq.Header.Set("Authorization", "Bearer "+access)
		}
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		// Сеть или таймаут: ответа не было, повторов не делаем
		return transportError(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError(err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if req.result != nil {
			if err := json.Unmarshal(respBody, req.result); err != nil {
				return fmt.Errorf("failed to decode response: %w", err)
			}
		}
		return nil
	}

	apiErr := parseError(resp.StatusCode, respBody)

	// Терминальные ветки: не-401 и 401 на неавторизуемом endpoint'е
	if !apiErr.IsAuthError() || req.noAuth {
		return apiErr
	}

	if attempt > 0 {
		// Повтор после refresh снова уперся в 401 — сессия невосстановима.
		// Второй refresh для того же логического вызова не делаем никогда;
		// наружу уходит ошибка самого повтора, не синтетическая.
		c.invalidateSession(ctx)
		return apiErr
	}

	refresh, err := c.tokens.RefreshToken(ctx)
	if err != nil || refresh == "" {
		// Обновляться нечем: чистим хранилище, сигналим о конце сессии
		// и отдаем исходную ошибку
		c.invalidateSession(ctx)
		return apiErr
	}

	access, refreshErr := c.refreshAccessToken(ctx, refresh)
	if refreshErr != nil {
		// Наружу уходит ошибка refresh-вызова, не исходная
		c.invalidateSession(ctx)
		return refreshErr
	}

	if err := c.tokens.SaveAccessToken(ctx, access); err != nil {
		slog.Warn("failed to persist refreshed access token", "error", err)
	}

	return c.send(ctx, req, payload, contentType, attempt+1)
}

// refreshAccessToken выполняет выделенный запрос к refresh endpoint'у.
// Идет через общий конвейер с noAuth, поэтому сам никогда не рекурсирует
// в refresh и возвращает уже нормализованную ошибку.
func (c *Client) refreshAccessToken(ctx context.Context, refresh string) (string, error) {
	var resp pkgapi.RefreshResponse
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   pathRefresh,
		body:   pkgapi.RefreshRequest{Refresh: refresh},
		noAuth: true,
		result: &resp,
	})
	if err != nil {
		return "", err
	}
	return resp.Access, nil
}

// invalidateSession чистит оба токена и уведомляет подписчика.
// Порядок фиксированный: сначала хранилище, потом сигнал.
func (c *Client) invalidateSession(ctx context.Context) {
	if err := c.tokens.Clear(ctx); err != nil {
		slog.Warn("failed to clear token store", "error", err)
	}
	if c.onSessionInvalid != nil {
		c.onSessionInvalid()
	}
}
