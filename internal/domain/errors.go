package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound возвращается, когда сущность или результат запроса не существует.
	ErrNotFound = errors.New("not found")
	// ErrInvalidPayload возвращается при структурной ошибке входных данных.
	ErrInvalidPayload = errors.New("invalid payload")
	// ErrAlreadyCompleted возвращается при повторной попытке завершить заказ.
	ErrAlreadyCompleted = errors.New("order already completed")
	// ErrStorage сигнализирует о невосстановимом сбое слоя хранения.
	// Такие ошибки не ретраятся и должны останавливать обработку.
	ErrStorage = errors.New("storage fault")
)

// NotFoundf оборачивает ErrNotFound сообщением с контекстом.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// InvalidPayloadf оборачивает ErrInvalidPayload сообщением с контекстом.
func InvalidPayloadf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidPayload, fmt.Sprintf(format, args...))
}

// AlreadyCompletedf оборачивает ErrAlreadyCompleted сообщением с контекстом.
func AlreadyCompletedf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrAlreadyCompleted, fmt.Sprintf(format, args...))
}

// Storagef оборачивает ErrStorage сообщением с контекстом.
func Storagef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrStorage, fmt.Sprintf(format, args...))
}

// IsNotFound проверяет, является ли ошибка отсутствием сущности.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsStorageFault проверяет, является ли ошибка сбоем хранилища.
func IsStorageFault(err error) bool {
	return errors.Is(err, ErrStorage)
}
