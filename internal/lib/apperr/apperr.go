// Package apperr описывает классификацию ошибок оркестратора.
//
// Ошибки проверки токена, учётных данных и входных данных приводятся к одному из
// видов Kind на границе сервиса. Ошибки нижележащих сервисов передаются как есть
// в виде StatusError.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind вид ошибки.
type Kind int

const (
	// KindInternal внутренняя ошибка (ошибка подписи токена, некорректный URI и т.п.).
	KindInternal Kind = iota
	// KindBadRequest некорректный запрос.
	KindBadRequest
	// KindUnauthorized отсутствующие или неверные учётные данные.
	KindUnauthorized
	// KindForbidden действие запрещено.
	KindForbidden
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	default:
		return "internal"
	}
}

// HTTPStatus возвращает HTTP-статус для вида ошибки.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Error ошибка с видом и коротким сообщением для клиента.
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

func (e *Error) Unwrap() error { return e.Err }

// Unauthorized ошибка неверных или отсутствующих учётных данных.
func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

// Forbidden ошибка запрета действия.
func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg}
}

// BadRequest ошибка некорректного запроса.
func BadRequest(msg string) *Error {
	return &Error{Kind: KindBadRequest, Message: msg}
}

// Internal внутренняя ошибка с причиной.
func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// As извлекает *Error из цепочки ошибок.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf возвращает вид ошибки; ошибки вне классификации считаются внутренними.
func KindOf(err error) Kind {
	if e, ok := As(err); ok {
		return e.Kind
	}
	return KindInternal
}

var (
	// ErrNotFound ресурс не найден в нижележащем сервисе.
	ErrNotFound = errors.New("not found")
	// ErrTransport нижележащий сервис недоступен: ответ не получен.
	ErrTransport = errors.New("external service communication error")
)

// StatusError ответ нижележащего сервиса с неуспешным статусом.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("downstream responded with status %d", e.StatusCode)
}

// Is позволяет проверять errors.Is(err, ErrNotFound) для ответов 404.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// AsStatus извлекает *StatusError из цепочки ошибок.
func AsStatus(err error) (*StatusError, bool) {
	var e *StatusError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
