package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind : категория ошибки, определяет HTTP-статус ответа
type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindStorage
	KindExternalService
	KindConfiguration
)

// единая таблица соответствия категории ошибки и HTTP-статуса
var statusByKind = map[Kind]int{
	KindValidation:      http.StatusBadRequest,
	KindNotFound:        http.StatusNotFound,
	KindStorage:         http.StatusInternalServerError,
	KindExternalService: http.StatusInternalServerError,
	KindConfiguration:   http.StatusServiceUnavailable,
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewValidation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func NewNotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func NewStorage(message string, err error) *Error {
	return &Error{Kind: KindStorage, Message: message, Err: err}
}

func NewExternalService(message string, err error) *Error {
	return &Error{Kind: KindExternalService, Message: message, Err: err}
}

func NewConfiguration(message string) *Error {
	return &Error{Kind: KindConfiguration, Message: message}
}

// HTTPStatus : возвращает статус для типизированной ошибки; false — ошибка не из нашей таксономии
func HTTPStatus(err error) (int, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		if code, ok := statusByKind[appErr.Kind]; ok {
			return code, true
		}
	}
	return 0, false
}

// IsKind : проверяет категорию типизированной ошибки
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// UserMessage : текст ошибки без технических деталей для ответа клиенту
func UserMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "внутренняя ошибка сервера"
}
