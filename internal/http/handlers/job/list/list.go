// Package list реализует HTTP-обработчик списка вакансий.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/jboard/orchestrator/internal/http/response"
	"github.com/jboard/orchestrator/internal/lib/sl"
	"github.com/jboard/orchestrator/internal/models"
)

// Service описывает получение вакансий.
type Service interface {
	List(ctx context.Context) (models.JobList, error)
}

// Handler отдаёт вакансии.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создаёт Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Список вакансий
// @Tags Jobs
// @Produce json
// @Success 200 {object} models.JobList
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка"
// @Router /api/jobs [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.job.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	jobs, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list jobs", sl.Err(err))
		response.WriteError(w, r, err)
		return
	}

	render.JSON(w, r, jobs)
}
