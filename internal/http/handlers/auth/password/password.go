// Package password реализует HTTP-обработчик смены пароля текущего пользователя.
package password

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/jboard/orchestrator/internal/http/middlewarectx"
	"github.com/jboard/orchestrator/internal/http/response"
	"github.com/jboard/orchestrator/internal/lib/sl"
	"github.com/jboard/orchestrator/internal/lib/validate"
)

// Request — старый и новый пароли.
type Request struct {
	OldPassword string `json:"oldPassword" validate:"required,nospaces"`
	NewPassword string `json:"newPassword" validate:"required,nospaces"`
}

// Service описывает смену пароля.
type Service interface {
	UpdatePassword(ctx context.Context, username, oldPassword, newPassword string) error
}

// Handler обрабатывает смену пароля.
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
// @Summary Смена пароля
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body Request true "Пароли"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 401 {object} response.ErrorResponse "Требуется аутентификация"
// @Failure 403 {object} response.ErrorResponse "Старый пароль не совпадает"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка"
// @Router /api/auth/update-password [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.password"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	identity, ok := middlewarectx.IdentityFromContext(r.Context())
	if !ok {
		response.WriteStatus(w, r, http.StatusUnauthorized, response.MsgAuthRequired)
		return
	}

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

	if err := h.service.UpdatePassword(r.Context(), identity.Username, req.OldPassword, req.NewPassword); err != nil {
		log.Error("password update failed", slog.String("username", identity.Username), sl.Err(err))
		response.WriteError(w, r, err)
		return
	}

	render.JSON(w, r, response.OK())
}
