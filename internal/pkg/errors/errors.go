package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись не найдена по идентификатору.
	ErrNotFound = errors.New("record not found")

	// ErrValidation используется для ошибок валидации входных данных.
	ErrValidation = errors.New("validation failed")

	// ErrConflict используется при нарушении ограничения уникальности
	// (например, повторное создание темы с тем же именем).
	ErrConflict = errors.New("resource already exists")
)
