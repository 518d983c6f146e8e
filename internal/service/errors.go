package service

import (
	"fmt"
	"net/http"
)

// Коды ошибок, которые видит клиент.
const (
	CodeBadRequest         = "BAD_REQUEST"
	CodeNotFound           = "NOT_FOUND"
	CodeUnauthenticated    = "UNAUTHENTICATED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeAlreadySignedUp    = "ALREADY_SIGNED_UP"
	CodeActivityFull       = "ACTIVITY_FULL"
	CodeNotSignedUp        = "NOT_SIGNED_UP"
	CodeInternal           = "INTERNAL"
)

// AppError описывает прикладную ошибку сервиса:
// код для клиента, человекочитаемое сообщение, HTTP-статус и вложенная ошибка.
type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

// Error реализует интерфейс error для AppError.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap возвращает вложенную ошибку для поддержки errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// ErrBadRequest конструирует AppError для ошибок валидации или некорректных запросов клиента.
func ErrBadRequest(msg string) *AppError {
	return &AppError{
		Code:    CodeBadRequest,
		Message: msg,
		Status:  http.StatusBadRequest,
	}
}

// ErrNotFound конструирует AppError для ситуации, когда ресурс не найден.
func ErrNotFound(msg string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: msg,
		Status:  http.StatusNotFound,
	}
}

// ErrUnauthenticated — нет валидного токена или учитель неизвестен.
// Отсутствие прав от отсутствия аутентификации не отличается.
func ErrUnauthenticated(msg string) *AppError {
	return &AppError{
		Code:    CodeUnauthenticated,
		Message: msg,
		Status:  http.StatusUnauthorized,
	}
}

// ErrInvalidCredentials — неверная пара логин/пароль.
func ErrInvalidCredentials() *AppError {
	return &AppError{
		Code:    CodeInvalidCredentials,
		Message: "Invalid username or password",
		Status:  http.StatusUnauthorized,
	}
}

// ErrDomain конструирует AppError для конфликтов записи (дубликат, нет мест, не записан).
// Все они отдаются клиенту как 400.
func ErrDomain(code, msg string) *AppError {
	return &AppError{
		Code:    code,
		Message: msg,
		Status:  http.StatusBadRequest,
	}
}

func errInternal(msg string, err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: msg,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// IsUnauthenticated помогает определить, соответствует ли ошибка HTTP-статусу 401.
func IsUnauthenticated(err error) bool {
	if app, ok := err.(*AppError); ok {
		return app.Status == http.StatusUnauthorized
	}
	return false
}
