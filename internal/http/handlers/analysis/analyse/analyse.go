// Package analyse реализует HTTP-обработчик анализа соответствия навыков
// текущего пользователя позиции.
package analyse

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
	"github.com/jboard/orchestrator/internal/models"
)

// Request — позиция для анализа.
type Request struct {
	Position string `json:"position" validate:"required"`
}

// Service описывает анализ соответствия.
type Service interface {
	Analyse(ctx context.Context, username, position string) (*models.AnalysisResult, error)
}

// Handler запускает анализ.
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
// @Summary Анализ соответствия позиции
// @Description Сопоставляет навыки пользователя с позицией. Одинаковые запросы отдаются из кэша.
// @Tags Analysis
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body Request true "Позиция"
// @Success 200 {object} models.AnalysisResult
// @Failure 400 {object} response.ErrorResponse "Нет навыков или некорректный запрос"
// @Failure 401 {object} response.ErrorResponse "Требуется аутентификация"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка"
// @Router /api/analysis [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.analysis.analyse"

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

	result, err := h.service.Analyse(r.Context(), identity.Username, req.Position)
	if err != nil {
		log.Error("analysis failed", slog.String("username", identity.Username), sl.Err(err))
		response.WriteError(w, r, err)
		return
	}

	render.JSON(w, r, result)
}
