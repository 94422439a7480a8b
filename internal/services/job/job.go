// Package job отдаёт каталог вакансий.
package job

import (
	"context"
	"log/slog"

	"github.com/jboard/orchestrator/internal/lib/sl"
	"github.com/jboard/orchestrator/internal/models"
)

// Catalog описывает каталог вакансий.
type Catalog interface {
	GetJobs(ctx context.Context) ([]models.Job, error)
}

// Service операции над вакансиями.
type Service struct {
	log     *slog.Logger
	catalog Catalog
}

// NewService создаёт Service.
func NewService(log *slog.Logger, catalog Catalog) *Service {
	return &Service{log: log, catalog: catalog}
}

// List возвращает все вакансии с их количеством.
func (s *Service) List(ctx context.Context) (models.JobList, error) {
	const op = "job.Service.List"
	log := s.log.With(sl.Op(op))

	jobs, err := s.catalog.GetJobs(ctx)
	if err != nil {
		log.Error("failed to get jobs", sl.Err(err))
		return models.JobList{}, err
	}
	if jobs == nil {
		jobs = []models.Job{}
	}
	log.Info("jobs found", slog.Int("total", len(jobs)))
	return models.JobList{Data: jobs, Meta: models.Meta{Total: len(jobs)}}, nil
}
