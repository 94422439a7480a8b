package clients

import (
	"context"
	"errors"
	"net/http"

	"github.com/jboard/orchestrator/internal/models"
)

// JobClient клиент каталога вакансий.
type JobClient struct {
	*Client
}

// NewJobClient создаёт клиента каталога вакансий.
func NewJobClient(c *Client) *JobClient {
	return &JobClient{Client: c}
}

// GetJobs возвращает все вакансии. Пустой ответ даёт пустой список.
func (c *JobClient) GetJobs(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	err := c.do(ctx, "clients.JobClient.GetJobs", http.MethodGet, "/jobs", nil, nil, &jobs)
	if err != nil && !errors.Is(err, errEmptyBody) {
		return nil, err
	}
	if jobs == nil {
		jobs = []models.Job{}
	}
	return jobs, nil
}
