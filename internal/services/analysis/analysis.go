// Package analysis сопоставляет навыки пользователя с позицией через сервис анализа.
package analysis

import (
	"context"
	"log/slog"

	"github.com/jboard/orchestrator/internal/lib/apperr"
	"github.com/jboard/orchestrator/internal/lib/sl"
	"github.com/jboard/orchestrator/internal/models"
)

// SkillLister возвращает навыки пользователя.
type SkillLister interface {
	GetAll(ctx context.Context, username string) (models.SkillList, error)
}

// Analyzer выполняет (или берёт из кэша) анализ соответствия.
type Analyzer interface {
	Analyse(ctx context.Context, position string, skills []string) (*models.AnalysisResult, error)
}

// Service анализ соответствия для пользователя.
type Service struct {
	log      *slog.Logger
	skills   SkillLister
	analyzer Analyzer
}

// NewService создаёт Service.
func NewService(log *slog.Logger, skills SkillLister, analyzer Analyzer) *Service {
	return &Service{log: log, skills: skills, analyzer: analyzer}
}

// Analyse собирает навыки пользователя и запрашивает анализ для позиции.
// Пользователь без навыков получает BadRequest до обращения к кэшу.
func (s *Service) Analyse(ctx context.Context, username, position string) (*models.AnalysisResult, error) {
	const op = "analysis.Service.Analyse"
	log := s.log.With(sl.Op(op), slog.String("username", username), slog.String("position", position))

	list, err := s.skills.GetAll(ctx, username)
	if err != nil {
		return nil, err
	}
	if len(list.Skills) == 0 {
		log.Info("user has no skills")
		return nil, apperr.BadRequest("No skills found for user " + username)
	}

	result, err := s.analyzer.Analyse(ctx, position, list.Skills)
	if err != nil {
		log.Error("analysis failed", sl.Err(err))
		return nil, err
	}
	return result, nil
}
