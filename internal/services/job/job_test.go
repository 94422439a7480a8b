package job_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jboard/orchestrator/internal/models"
	"github.com/jboard/orchestrator/internal/services/job"
)

type CatalogMock struct {
	mock.Mock
}

func (m *CatalogMock) GetJobs(ctx context.Context) ([]models.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Job), args.Error(1)
}

func TestService_List(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("jobs with meta", func(t *testing.T) {
		catalog := new(CatalogMock)
		jobs := []models.Job{{ID: "1", Title: "Go dev"}, {ID: "2", Title: "Java dev"}}
		catalog.On("GetJobs", mock.Anything).Return(jobs, nil).Once()

		got, err := job.NewService(log, catalog).List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, jobs, got.Data)
		assert.Equal(t, 2, got.Meta.Total)
	})

	t.Run("nil becomes empty", func(t *testing.T) {
		catalog := new(CatalogMock)
		catalog.On("GetJobs", mock.Anything).Return([]models.Job(nil), nil).Once()

		got, err := job.NewService(log, catalog).List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, got.Data)
		assert.Empty(t, got.Data)
		assert.Equal(t, 0, got.Meta.Total)
	})

	t.Run("error passes through", func(t *testing.T) {
		catalog := new(CatalogMock)
		boom := errors.New("boom")
		catalog.On("GetJobs", mock.Anything).Return(nil, boom).Once()

		_, err := job.NewService(log, catalog).List(context.Background())
		assert.ErrorIs(t, err, boom)
	})
}
