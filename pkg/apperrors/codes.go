package apperrors

// ErrorCode - код ошибки в теле ответа
type ErrorCode string

const (
	CodeInternalError ErrorCode = "INTERNAL_ERROR"

	// Ресурсы и входные данные
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeConflict         ErrorCode = "CONFLICT"
	// Файл вложения не удалось сохранить или удалить
	CodeStorageFailed ErrorCode = "STORAGE_FAILED"

	// Доступ
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
)
