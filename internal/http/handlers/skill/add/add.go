// Package add реализует HTTP-обработчик добавления навыка текущему пользователю.
package add

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

// Request — навык длиной от 2 до 50 символов.
type Request struct {
	Skill string `json:"skill" validate:"required,min=2,max=50"`
}

// Service описывает добавление навыка.
type Service interface {
	Add(ctx context.Context, username, skill string) error
}

// Handler добавляет навык.
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
// @Summary Добавление навыка
// @Tags Skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body Request true "Навык"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 401 {object} response.ErrorResponse "Требуется аутентификация"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка"
// @Router /api/skills [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.skill.add"

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

	if err := h.service.Add(r.Context(), identity.Username, req.Skill); err != nil {
		log.Error("failed to add skill", sl.Err(err))
		response.WriteError(w, r, err)
		return
	}

	render.JSON(w, r, response.OK())
}
