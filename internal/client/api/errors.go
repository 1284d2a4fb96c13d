package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	pkgapi "github.com/iudanet/filmoteka/pkg/api"
)

// Error — нормализованная форма любой ошибки, выходящей за границу клиента.
// Message всегда непустой; Errors заполнен для ошибок валидации (4xx с
// пополевыми сообщениями); Status == 0 означает транспортную ошибку
// (сеть/таймаут, ответа не было).
type Error struct {
	Message string
	Errors  map[string][]string
	Status  int
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("server error (%d): %s", e.Status, e.Message)
}

// IsAuthError reports whether the failure is an authorization failure
// (HTTP 401), the only class that triggers the refresh protocol.
func (e *Error) IsAuthError() bool {
	return e.Status == http.StatusUnauthorized
}

// transportError оборачивает ошибку без ответа сервера (сеть, таймаут)
func transportError(err error) *Error {
	msg := "request failed"
	if err != nil {
		msg = err.Error()
	}
	return &Error{Message: msg}
}

// defaultMessage подбирает generic текст по классу статуса,
// чтобы Message никогда не был пустым
func defaultMessage(status int) string {
	switch {
	case status == http.StatusUnauthorized:
		return "authentication required"
	case status == http.StatusForbidden:
		return "permission denied"
	case status == http.StatusNotFound:
		return "resource not found"
	case status >= 500:
		return "server error, try again later"
	default:
		return "request failed"
	}
}

// parseError нормализует тело ошибки сервера. Бэкенд отдает несколько форм:
// {success, message, errors}, {"detail": ...}, {"error": ...} или голую
// карту пополевых ошибок валидации — все сводятся к *Error.
func parseError(status int, body []byte) *Error {
	apiErr := &Error{
		Status:  status,
		Message: defaultMessage(status),
	}

	var resp pkgapi.ErrorResponse
	if err := json.Unmarshal(body, &resp); err == nil {
		switch {
		case resp.Message != "":
			apiErr.Message = resp.Message
		case resp.Detail != "":
			apiErr.Message = resp.Detail
		case resp.Error != "":
			apiErr.Message = resp.Error
		}
		if len(resp.Errors) > 0 {
			apiErr.Errors = resp.Errors
		}
	}

	// Регистрация при невалидных данных возвращает serializer.errors как
	// голую карту {"field": ["msg", ...]} без обертки
	if apiErr.Errors == nil && status == http.StatusBadRequest {
		var fields map[string][]string
		if err := json.Unmarshal(body, &fields); err == nil && len(fields) > 0 {
			apiErr.Errors = fields
		}
	}

	return apiErr
}
