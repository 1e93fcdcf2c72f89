package apperrors

import "net/http"

// Фабрики и предопределенные переменные для ошибок бизнес-логики доски.

// ErrNotFound - фабрика для ошибки "не найдено" (404).
// Используется, когда ошибка репозитория (типа gorm.ErrRecordNotFound)
// должна быть преобразована в AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (409)
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// Частые статичные ошибки

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid phone or password",
	http.StatusUnauthorized,
)

var ErrPhoneAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Phone already registered",
	http.StatusConflict,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"auth",
	"Password must be at least 6 characters long",
	http.StatusBadRequest,
)

// ErrUserBlocked - заблокированный пользователь не может входить и постить.
var ErrUserBlocked = New(
	CodeUserBlocked,
	"auth",
	"Account is blocked",
	http.StatusForbidden,
)

var ErrNotPostAuthor = New(
	CodeForbidden,
	"posts",
	"Only the author can modify this post",
	http.StatusForbidden,
)
