package apperrors

import (
	"net/http"
)

/*
Фабрики и предопределенные переменные
для общих ошибок бизнес-логики и домена.
*/

// ErrNotFound - фабрика для ошибки "не найдено" (404).
// Используется, когда ошибка репозитория должна быть преобразована в AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrStorage - сбой файлового хранилища, привязанный к полю формы.
// Отдается как 422, чтобы клиент увидел ошибку у нужного поля.
func ErrStorage(err error, field string) *AppError {
	return Wrap(err, CodeStorageFailed, "storage", "File could not be stored", http.StatusUnprocessableEntity).
		WithDetails(map[string]string{field: "The " + field + " failed to upload."})
}

// --- Auth ---

// ErrUnauthenticated - общий ответ для отсутствующего или невалидного токена
var ErrUnauthenticated = New(
	CodeUnauthorized,
	"auth",
	"Unauthorized",
	http.StatusUnauthorized,
)

// ErrInvalidCredentials - неверный email или пароль.
// Сообщение намеренно не различает "нет пользователя" и "неверный пароль".
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Unauthorized",
	http.StatusUnauthorized,
)

// ErrInvalidToken - неверный или просроченный токен (access, reset)
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrInsufficientPermissions - роль не позволяет выполнить действие
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// ErrCannotModifySelf - администратор пытается удалить сам себя
var ErrCannotModifySelf = New(
	CodeForbidden,
	"user",
	"Operation on self is not allowed",
	http.StatusForbidden,
)

// --- Annonces ---

var ErrAnnonceNotFound = New(CodeNotFound, "annonce", "Annonce not found", http.StatusNotFound)

// ErrNotAnnonceOwner - действие над чужой вакансией
var ErrNotAnnonceOwner = New(
	CodeForbidden,
	"annonce",
	"You are not the owner of this annonce",
	http.StatusForbidden,
)

// --- Candidatures ---

var ErrCandidatureNotFound = New(CodeNotFound, "candidature", "Candidature not found", http.StatusNotFound)

// ErrCandidatureAccessDenied - кандидатура не принадлежит ни пользователю, ни его вакансии
var ErrCandidatureAccessDenied = New(
	CodeForbidden,
	"candidature",
	"Access to this candidature denied",
	http.StatusForbidden,
)

// --- Categories ---

var ErrCategoryNotFound = New(CodeNotFound, "categorie", "Categorie not found", http.StatusNotFound)

// ErrCategoryInUse - категория используется вакансиями и не может быть удалена
var ErrCategoryInUse = New(
	CodeConflict,
	"categorie",
	"Categorie is used by existing annonces",
	http.StatusConflict,
)

// --- Users & Notifications ---

var ErrUserNotFound = New(CodeNotFound, "user", "User not found", http.StatusNotFound)

var ErrNotificationNotFound = New(CodeNotFound, "notification", "Notification not found", http.StatusNotFound)
