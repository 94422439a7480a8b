package skill_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jboard/orchestrator/internal/lib/apperr"
	"github.com/jboard/orchestrator/internal/models"
	"github.com/jboard/orchestrator/internal/services/skill"
)

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type StoreMock struct {
	mock.Mock
}

func (m *StoreMock) GetAllSkills(ctx context.Context, username string) ([]models.Skill, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Skill), args.Error(1)
}

func (m *StoreMock) AddSkill(ctx context.Context, s models.Skill) error {
	return m.Called(ctx, s).Error(0)
}

func (m *StoreMock) RemoveSkill(ctx context.Context, s models.Skill) error {
	return m.Called(ctx, s).Error(0)
}

func (m *StoreMock) DeleteAllSkills(ctx context.Context, username string) error {
	return m.Called(ctx, username).Error(0)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "Go", want: "go"},
		{in: "  Kubernetes  ", want: "kubernetes"},
		{in: "C++", want: "c++"},
		{in: "", wantErr: true},
		{in: "   ", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := skill.Normalize(tt.in)
			if tt.wantErr {
				e, ok := apperr.As(err)
				require.True(t, ok)
				assert.Equal(t, apperr.KindBadRequest, e.Kind)
				assert.Equal(t, skill.MsgEmptySkill, e.Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_GetAll(t *testing.T) {
	tests := []struct {
		name    string
		ret     []models.Skill
		err     error
		want    models.SkillList
		wantErr bool
	}{
		{
			name: "skills",
			ret:  []models.Skill{{Username: "john", Skill: "go"}, {Username: "john", Skill: "sql"}},
			want: models.SkillList{Skills: []string{"go", "sql"}, Meta: models.Meta{Total: 2}},
		},
		{
			name: "no skills",
			ret:  []models.Skill{},
			want: models.SkillList{Skills: []string{}, Meta: models.Meta{Total: 0}},
		},
		{
			name: "not found is empty",
			err:  &apperr.StatusError{StatusCode: http.StatusNotFound},
			want: models.SkillList{Skills: []string{}, Meta: models.Meta{Total: 0}},
		},
		{
			name:    "other error",
			err:     &apperr.StatusError{StatusCode: http.StatusInternalServerError},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(StoreMock)
			if tt.err != nil {
				store.On("GetAllSkills", mock.Anything, "john").Return(nil, tt.err).Once()
			} else {
				store.On("GetAllSkills", mock.Anything, "john").Return(tt.ret, nil).Once()
			}
			svc := skill.NewService(newNoopLogger(), store)

			got, err := svc.GetAll(context.Background(), "john")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_AddRemove(t *testing.T) {
	ctx := context.Background()
	store := new(StoreMock)
	want := models.Skill{Username: "john", Skill: "docker"}
	store.On("AddSkill", mock.Anything, want).Return(nil).Once()
	store.On("RemoveSkill", mock.Anything, want).Return(nil).Once()
	svc := skill.NewService(newNoopLogger(), store)

	require.NoError(t, svc.Add(ctx, "john", "  Docker "))
	require.NoError(t, svc.Remove(ctx, "john", "DOCKER"))
	store.AssertExpectations(t)
}

func TestService_AddBlankSkill(t *testing.T) {
	store := new(StoreMock)
	svc := skill.NewService(newNoopLogger(), store)

	err := svc.Add(context.Background(), "john", "  ")
	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
	store.AssertNotCalled(t, "AddSkill", mock.Anything, mock.Anything)
}

func TestService_StoreErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	store := new(StoreMock)
	store.On("AddSkill", mock.Anything, mock.Anything).Return(boom).Once()
	store.On("RemoveSkill", mock.Anything, mock.Anything).Return(boom).Once()
	store.On("DeleteAllSkills", mock.Anything, "john").Return(boom).Once()
	svc := skill.NewService(newNoopLogger(), store)

	assert.ErrorIs(t, svc.Add(ctx, "john", "go"), boom)
	assert.ErrorIs(t, svc.Remove(ctx, "john", "go"), boom)
	assert.ErrorIs(t, svc.DeleteAll(ctx, "john"), boom)
}

func TestService_DeleteAll(t *testing.T) {
	store := new(StoreMock)
	store.On("DeleteAllSkills", mock.Anything, "john").Return(nil).Once()
	svc := skill.NewService(newNoopLogger(), store)

	require.NoError(t, svc.DeleteAll(context.Background(), "john"))
	store.AssertExpectations(t)
}
