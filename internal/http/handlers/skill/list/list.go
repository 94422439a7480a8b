// Package list реализует HTTP-обработчик получения навыков текущего пользователя.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/jboard/orchestrator/internal/http/middlewarectx"
	"github.com/jboard/orchestrator/internal/http/response"
	"github.com/jboard/orchestrator/internal/lib/sl"
	"github.com/jboard/orchestrator/internal/models"
)

// Service описывает получение навыков.
type Service interface {
	GetAll(ctx context.Context, username string) (models.SkillList, error)
}

// Handler отдаёт навыки пользователя.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создаёт Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Навыки пользователя
// @Tags Skills
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.SkillList
// @Failure 401 {object} response.ErrorResponse "Требуется аутентификация"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка"
// @Router /api/skills [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.skill.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	identity, ok := middlewarectx.IdentityFromContext(r.Context())
	if !ok {
		response.WriteStatus(w, r, http.StatusUnauthorized, response.MsgAuthRequired)
		return
	}

	skills, err := h.service.GetAll(r.Context(), identity.Username)
	if err != nil {
		log.Error("failed to get skills", sl.Err(err))
		response.WriteError(w, r, err)
		return
	}

	render.JSON(w, r, skills)
}
