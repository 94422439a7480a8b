package list

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jboard/orchestrator/internal/lib/apperr"
	"github.com/jboard/orchestrator/internal/models"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) List(ctx context.Context) (models.JobList, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.JobList), args.Error(1)
}

func TestHandler_ServeHTTP(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("jobs", func(t *testing.T) {
		svc := new(ServiceMock)
		svc.On("List", mock.Anything).Return(models.JobList{
			Data: []models.Job{{ID: "1", Title: "Go developer", Company: "ACME"}},
			Meta: models.Meta{Total: 1},
		}, nil).Once()
		w := httptest.NewRecorder()
		New(log, svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/jobs", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"title":"Go developer"`)
		assert.Contains(t, w.Body.String(), `"meta":{"total":1}`)
	})

	t.Run("transport error", func(t *testing.T) {
		svc := new(ServiceMock)
		svc.On("List", mock.Anything).
			Return(models.JobList{}, fmt.Errorf("op: %w: %w", apperr.ErrTransport, context.DeadlineExceeded)).Once()
		w := httptest.NewRecorder()
		New(log, svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/jobs", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"status":"Error","error":"external service communication error"}`, w.Body.String())
	})
}
