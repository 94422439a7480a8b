package list

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

func (m *ServiceMock) GetAll(ctx context.Context, username string) (models.SkillList, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(models.SkillList), args.Error(1)
}

func TestHandler_ServeHTTP(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	authed := func() *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/api/skills", nil)
		return req.WithContext(middlewarectx.WithPrincipal(req.Context(), models.Principal{
			Identity: models.Identity{Username: "john", Role: models.RoleFree},
		}))
	}

	t.Run("skills", func(t *testing.T) {
		svc := new(ServiceMock)
		svc.On("GetAll", mock.Anything, "john").
			Return(models.SkillList{Skills: []string{"go", "sql"}, Meta: models.Meta{Total: 2}}, nil).Once()
		w := httptest.NewRecorder()
		New(log, svc).ServeHTTP(w, authed())

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"skills":["go","sql"],"meta":{"total":2}}`, w.Body.String())
	})

	t.Run("empty", func(t *testing.T) {
		svc := new(ServiceMock)
		svc.On("GetAll", mock.Anything, "john").
			Return(models.SkillList{Skills: []string{}}, nil).Once()
		w := httptest.NewRecorder()
		New(log, svc).ServeHTTP(w, authed())

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"skills":[],"meta":{"total":0}}`, w.Body.String())
	})

	t.Run("downstream error", func(t *testing.T) {
		svc := new(ServiceMock)
		svc.On("GetAll", mock.Anything, "john").
			Return(models.SkillList{}, &apperr.StatusError{StatusCode: http.StatusBadGateway}).Once()
		w := httptest.NewRecorder()
		New(log, svc).ServeHTTP(w, authed())

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"status":"Error","error":"internal server error"}`, w.Body.String())
	})

	t.Run("anonymous", func(t *testing.T) {
		w := httptest.NewRecorder()
		New(log, new(ServiceMock)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/skills", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
