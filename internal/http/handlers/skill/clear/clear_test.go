package clear

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jboard/orchestrator/internal/http/middlewarectx"
	"github.com/jboard/orchestrator/internal/lib/apperr"
	"github.com/jboard/orchestrator/internal/models"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) DeleteAll(ctx context.Context, username string) error {
	return m.Called(ctx, username).Error(0)
}

func TestHandler_ServeHTTP(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	newReq := func() *http.Request {
		req := httptest.NewRequest(http.MethodDelete, "/api/skills", nil)
		return req.WithContext(middlewarectx.WithPrincipal(req.Context(), models.Principal{
			Identity: models.Identity{Username: "john", Role: models.RoleFree},
		}))
	}

	t.Run("cleared", func(t *testing.T) {
		svc := new(ServiceMock)
		svc.On("DeleteAll", mock.Anything, "john").Return(nil).Once()
		w := httptest.NewRecorder()
		New(log, svc).ServeHTTP(w, newReq())

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"OK"}`, w.Body.String())
	})

	t.Run("not found downstream", func(t *testing.T) {
		svc := new(ServiceMock)
		svc.On("DeleteAll", mock.Anything, "john").Return(&apperr.StatusError{StatusCode: http.StatusNotFound}).Once()
		w := httptest.NewRecorder()
		New(log, svc).ServeHTTP(w, newReq())

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"status":"Error","error":"not found"}`, w.Body.String())
	})
}
