// Package skill управляет навыками пользователя в хранилище навыков.
package skill

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/jboard/orchestrator/internal/lib/apperr"
	"github.com/jboard/orchestrator/internal/lib/sl"
	"github.com/jboard/orchestrator/internal/models"
)

// MsgEmptySkill сообщение о пустом навыке.
const MsgEmptySkill = "skill cannot be empty"

// Store описывает хранилище навыков.
type Store interface {
	GetAllSkills(ctx context.Context, username string) ([]models.Skill, error)
	AddSkill(ctx context.Context, skill models.Skill) error
	RemoveSkill(ctx context.Context, skill models.Skill) error
	DeleteAllSkills(ctx context.Context, username string) error
}

// Service операции над навыками пользователя.
type Service struct {
	log   *slog.Logger
	store Store
}

// NewService создаёт Service.
func NewService(log *slog.Logger, store Store) *Service {
	return &Service{log: log, store: store}
}

// Normalize обрезает пробелы и приводит навык к нижнему регистру.
func Normalize(skill string) (string, error) {
	s := strings.TrimSpace(skill)
	if s == "" {
		return "", apperr.BadRequest(MsgEmptySkill)
	}
	return strings.ToLower(s), nil
}

// GetAll возвращает навыки пользователя. Ответ "не найдено" даёт пустой список.
func (s *Service) GetAll(ctx context.Context, username string) (models.SkillList, error) {
	const op = "skill.Service.GetAll"
	log := s.log.With(sl.Op(op), slog.String("username", username))

	list, err := s.store.GetAllSkills(ctx, username)
	if errors.Is(err, apperr.ErrNotFound) {
		log.Info("no skills found, returning empty list")
		return models.SkillList{Skills: []string{}, Meta: models.Meta{Total: 0}}, nil
	}
	if err != nil {
		log.Error("failed to get skills", sl.Err(err))
		return models.SkillList{}, err
	}

	skills := make([]string, 0, len(list))
	for _, sk := range list {
		skills = append(skills, sk.Skill)
	}
	log.Info("skills found", slog.Int("total", len(skills)))
	return models.SkillList{Skills: skills, Meta: models.Meta{Total: len(skills)}}, nil
}

// Add добавляет навык пользователю.
func (s *Service) Add(ctx context.Context, username, skill string) error {
	const op = "skill.Service.Add"
	return s.modify(ctx, op, username, skill, s.store.AddSkill)
}

// Remove удаляет навык пользователя.
func (s *Service) Remove(ctx context.Context, username, skill string) error {
	const op = "skill.Service.Remove"
	return s.modify(ctx, op, username, skill, s.store.RemoveSkill)
}

func (s *Service) modify(ctx context.Context, op, username, skill string, call func(context.Context, models.Skill) error) error {
	normalized, err := Normalize(skill)
	if err != nil {
		return err
	}
	log := s.log.With(sl.Op(op), slog.String("username", username), slog.String("skill", normalized))

	if err := call(ctx, models.Skill{Username: username, Skill: normalized}); err != nil {
		log.Error("skill operation failed", sl.Err(err))
		return err
	}
	log.Info("skill operation completed")
	return nil
}

// DeleteAll удаляет все навыки пользователя.
func (s *Service) DeleteAll(ctx context.Context, username string) error {
	const op = "skill.Service.DeleteAll"
	log := s.log.With(sl.Op(op), slog.String("username", username))

	if err := s.store.DeleteAllSkills(ctx, username); err != nil {
		log.Error("failed to delete skills", sl.Err(err))
		return err
	}
	log.Info("all skills deleted")
	return nil
}
