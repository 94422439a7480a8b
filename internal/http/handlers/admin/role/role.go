// Package role реализует HTTP-обработчик смены роли пользователя администратором.
//
// Доступ проверяется не токеном, а статическими учётными данными администратора
// из заголовка Authorization: Basic.
package role

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/jboard/orchestrator/internal/http/response"
	"github.com/jboard/orchestrator/internal/lib/apperr"
	"github.com/jboard/orchestrator/internal/lib/sl"
	"github.com/jboard/orchestrator/internal/lib/validate"
	"github.com/jboard/orchestrator/internal/models"
)

// Request — пользователь и новая роль (FREE или PREMIUM).
type Request struct {
	Username string      `json:"username" validate:"required"`
	Role     models.Role `json:"role" validate:"required" swaggertype:"string" enums:"FREE,PREMIUM"`
}

// Service описывает смену роли.
type Service interface {
	UpdateRole(ctx context.Context, authHeader, username string, role models.Role) error
}

// Handler обрабатывает смену роли.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создаёт Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validate.New(),
	}
}

// ServeHTTP godoc
// @Summary Смена роли пользователя
// @Tags Admin
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param request body Request true "Пользователь и роль"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 401 {object} response.ErrorResponse "Неверные учётные данные администратора"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка"
// @Router /api/admin/change-user-role [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.role"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		response.WriteStatus(w, r, http.StatusBadRequest, response.MsgInvalidBody)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		response.WriteValidationError(w, r, err)
		return
	}

	err := h.service.UpdateRole(r.Context(), r.Header.Get("Authorization"), req.Username, req.Role)
	if err != nil {
		kind := apperr.KindOf(err)
		attrs := []any{slog.String("username", req.Username), slog.String("kind", kind.String()), sl.Err(err)}
		// отказ guard'а ожидаем, внутренняя ошибка нет
		if kind == apperr.KindInternal {
			log.Error("role update failed", attrs...)
		} else {
			log.Warn("role update rejected", attrs...)
		}
		response.WriteError(w, r, err)
		return
	}

	render.JSON(w, r, response.OK())
}
