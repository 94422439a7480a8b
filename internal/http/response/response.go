// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON‑ответов HTTP‑обработчиков: ошибок, сообщений валидации
// и отображения ошибок сервисов на HTTP-статусы.
package response

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/jboard/orchestrator/internal/lib/apperr"
	"github.com/jboard/orchestrator/internal/lib/validate"
)

// Response — ответ на успешную операцию без данных.
type Response struct {
	Status string `json:"status" example:"OK"`
}

// ErrorResponse — структура ошибки, в том числе для Swagger-документации.
// Используется в аннотациях @Failure как возвращаемый тип ошибки.
type ErrorResponse struct {
	Status string `json:"status" example:"Error"`
	Error  string `json:"error" example:"invalid request body"`
}

const (
	// StatusOK — значение статуса для успешного ответа.
	StatusOK = "OK"
	// StatusError — значение статуса для ответа с ошибкой.
	StatusError = "Error"
)

// Сообщения для ошибок нижележащих сервисов.
const (
	MsgInternal        = "internal server error"
	MsgUnauthorized    = "unauthorized"
	MsgAccessDenied    = "access denied"
	MsgNotFound        = "not found"
	MsgAlreadyExists   = "user already registered"
	MsgCommunication   = "external service communication error"
	MsgInvalidBody     = "invalid request body"
	MsgAuthRequired    = "authentication required"
	MsgTooManyRequests = "too many requests"
)

// OK возвращает Response об успешной операции.
func OK() Response {
	return Response{Status: StatusOK}
}

// Error возвращает ErrorResponse с переданным сообщением.
func Error(msg string) ErrorResponse {
	return ErrorResponse{
		Status: StatusError,
		Error:  msg,
	}
}

// Classify возвращает HTTP-статус и сообщение клиенту для ошибки сервиса.
func Classify(err error) (int, string) {
	if e, ok := apperr.As(err); ok {
		return e.Kind.HTTPStatus(), e.Message
	}
	if se, ok := apperr.AsStatus(err); ok {
		switch code := se.StatusCode; {
		case code >= http.StatusInternalServerError:
			return http.StatusInternalServerError, MsgInternal
		case code == http.StatusUnauthorized:
			return code, MsgUnauthorized
		case code == http.StatusForbidden:
			return code, MsgAccessDenied
		case code == http.StatusNotFound:
			return code, MsgNotFound
		case code == http.StatusConflict:
			return code, MsgAlreadyExists
		case code >= http.StatusBadRequest:
			msg := se.Body
			if msg == "" {
				msg = strings.ToLower(http.StatusText(code))
			}
			return code, msg
		}
	}
	if errors.Is(err, apperr.ErrTransport) {
		return http.StatusInternalServerError, MsgCommunication
	}
	return http.StatusInternalServerError, MsgInternal
}

// WriteError пишет ответ с ошибкой сервиса.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := Classify(err)
	render.Status(r, status)
	render.JSON(w, r, Error(msg))
}

// WriteStatus пишет ответ с ошибкой и явным статусом.
func WriteStatus(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, Error(msg))
}

// ValidationError формирует ErrorResponse на основе ошибок валидации.
// Каждое нарушение формируется в человеко‑читаемый текст, объединённый через запятую.
func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case validate.TagNoSpaces:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must not contain spaces", err.Field()))
		case "min":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be at least %s characters", err.Field(), err.Param()))
		case "max":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be at most %s characters", err.Field(), err.Param()))
		case "oneof":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be one of: %s", err.Field(), err.Param()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not valid", err.Field()))
		}
	}
	return Error(strings.Join(errsMsgs, ", "))
}

// WriteValidationError пишет ответ 400 для ошибки валидации.
func WriteValidationError(w http.ResponseWriter, r *http.Request, err error) {
	render.Status(r, http.StatusBadRequest)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		render.JSON(w, r, ValidationError(verrs))
		return
	}
	render.JSON(w, r, Error(MsgInvalidBody))
}
