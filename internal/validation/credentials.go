package validation

import (
	"fmt"
	"regexp"
)

// EmailPattern — грубая проверка формата email; строгую делает сервер
var EmailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const (
	// MinPasswordLen минимальная длина пароля (совпадает с серверной)
	MinPasswordLen = 8

	// MinScore и MaxScore — допустимый диапазон оценки фильма
	MinScore = 1
	MaxScore = 5
)

// ValidateEmail проверяет, что строка похожа на email
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	if !EmailPattern.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}

	return nil
}

// ValidatePassword проверяет минимальные требования к паролю
// Минимум 8 символов
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}

	return nil
}

// ValidateScore проверяет, что оценка лежит в диапазоне 1-5
func ValidateScore(score int) error {
	if score < MinScore || score > MaxScore {
		return fmt.Errorf("score must be between %d and %d", MinScore, MaxScore)
	}

	return nil
}
