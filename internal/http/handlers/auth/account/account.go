// Package account реализует HTTP-обработчик удаления учётной записи текущего пользователя.
package account

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

// Service описывает удаление учётной записи.
type Service interface {
	DeleteAccount(ctx context.Context, username string) error
}

// Handler обрабатывает удаление учётной записи.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создаёт Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Удаление учётной записи
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.ErrorResponse "Требуется аутентификация"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка"
// @Router /api/auth/delete-account [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.account"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	identity, ok := middlewarectx.IdentityFromContext(r.Context())
	if !ok {
		response.WriteStatus(w, r, http.StatusUnauthorized, response.MsgAuthRequired)
		return
	}

	if err := h.service.DeleteAccount(r.Context(), identity.Username); err != nil {
		log.Error("account deletion failed", slog.String("username", identity.Username), sl.Err(err))
		response.WriteError(w, r, err)
		return
	}

	log.Info("account deleted", slog.String("username", identity.Username))
	render.JSON(w, r, response.OK())
}
