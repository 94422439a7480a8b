// Package health отдаёт признак живости сервиса.
package health

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/jboard/orchestrator/internal/http/response"
)

// Handler отвечает на проверку живости.
type Handler struct{}

// New создаёт Handler.
func New() *Handler {
	return &Handler{}
}

// ServeHTTP godoc
// @Summary Проверка живости
// @Tags Health
// @Produce json
// @Success 200 {object} response.Response
// @Router /health [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, response.OK())
}
