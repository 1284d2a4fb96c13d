package api

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

// LoginRequest представляет запрос на аутентификацию (email + password)
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User представляет профиль пользователя, как его отдает сервер
type User struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	DateJoined string `json:"date_joined"`
	IsActive   bool   `json:"is_active"`
	IsStaff    bool   `json:"is_staff"`
}

// AuthResponse представляет ответ login/register: профиль и пара токенов.
// Токены лежат на верхнем уровне рядом с профилем, не в envelope.
type AuthResponse struct {
	User    *User  `json:"user"`
	Access  string `json:"access"`  // JWT access token
	Refresh string `json:"refresh"` // refresh token
	Message string `json:"message"`
}

// ProfileUpdateRequest представляет частичное обновление профиля
type ProfileUpdateRequest struct {
	Username  string `json:"username,omitempty"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// RefreshRequest представляет запрос на обновление access токена
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// RefreshResponse представляет ответ с новым access токеном
type RefreshResponse struct {
	Access string `json:"access"`
}

// LogoutRequest представляет запрос на logout (сервер блеклистит refresh токен)
type LogoutRequest struct {
	Refresh string `json:"refresh"`
}

// ErrorResponse представляет тело ошибки сервера.
// Бэкенд отдает несколько форм: {success, message, errors}, {"detail": ...}
// (SimpleJWT) или {"error": ...} — все поля опциональны.
type ErrorResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Detail  string              `json:"detail"`
	Error   string              `json:"error"`
	Errors  map[string][]string `json:"errors"`
}
