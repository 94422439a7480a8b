// Package clear реализует HTTP-обработчик удаления всех навыков текущего пользователя.
package clear

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/jboard/orchestrator/internal/http/middlewarectx"
	"github.com/jboard/orchestrator/internal/http/response"
	"github.com/jboard/orchestrator/internal/lib/sl"
)

// Service описывает удаление всех навыков.
type Service interface {
	DeleteAll(ctx context.Context, username string) error
}

// Handler удаляет все навыки.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создаёт Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Удаление всех навыков
// @Tags Skills
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.ErrorResponse "Требуется аутентификация"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка"
// @Router /api/skills [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.skill.clear"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	identity, ok := middlewarectx.IdentityFromContext(r.Context())
	if !ok {
		response.WriteStatus(w, r, http.StatusUnauthorized, response.MsgAuthRequired)
		return
	}

	if err := h.service.DeleteAll(r.Context(), identity.Username); err != nil {
		log.Error("failed to delete skills", sl.Err(err))
		response.WriteError(w, r, err)
		return
	}

	render.JSON(w, r, response.OK())
}
