package analyse

import (
	"bytes"
	"context"
	"encoding/json"
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

func (m *ServiceMock) Analyse(ctx context.Context, username, position string) (*models.AnalysisResult, error) {
	args := m.Called(ctx, username, position)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AnalysisResult), args.Error(1)
}

func TestHandler_ServeHTTP(t *testing.T) {
	raw := json.RawMessage(`{"message":"good fit","score":91}`)

	tests := []struct {
		name       string
		body       string
		anonymous  bool
		setupMocks func(s *ServiceMock)
		wantStatus int
		wantBody   string
	}{
		{
			name: "analysed",
			body: `{"position":"backend"}`,
			setupMocks: func(s *ServiceMock) {
				s.On("Analyse", mock.Anything, "john", "backend").
					Return(&models.AnalysisResult{Message: "good fit", Raw: raw}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   string(raw),
		},
		{
			name: "no skills",
			body: `{"position":"backend"}`,
			setupMocks: func(s *ServiceMock) {
				s.On("Analyse", mock.Anything, "john", "backend").
					Return(nil, apperr.BadRequest("No skills found for user john")).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"status":"Error","error":"No skills found for user john"}`,
		},
		{
			name:       "missing position",
			body:       `{"position":""}`,
			setupMocks: func(*ServiceMock) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"status":"Error","error":"field Position is a required field"}`,
		},
		{
			name:       "anonymous",
			body:       `{"position":"backend"}`,
			anonymous:  true,
			setupMocks: func(*ServiceMock) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"status":"Error","error":"authentication required"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			tt.setupMocks(svc)
			handler := New(slog.New(slog.NewTextHandler(io.Discard, nil)), svc)

			req := httptest.NewRequest(http.MethodPost, "/api/analysis", bytes.NewBufferString(tt.body))
			if !tt.anonymous {
				req = req.WithContext(middlewarectx.WithPrincipal(req.Context(), models.Principal{
					Identity: models.Identity{Username: "john", Role: models.RolePremium},
				}))
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			svc.AssertExpectations(t)
		})
	}
}
