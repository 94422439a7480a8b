// Package role меняет роль пользователя по запросу администратора.
package role

import (
	"context"
	"log/slog"

	"github.com/jboard/orchestrator/internal/events"
	"github.com/jboard/orchestrator/internal/lib/apperr"
	"github.com/jboard/orchestrator/internal/lib/sl"
	"github.com/jboard/orchestrator/internal/models"
)

// MsgInvalidRole сообщение о неизвестной роли.
const MsgInvalidRole = "role must be FREE or PREMIUM"

// Guard проверяет учётные данные администратора из заголовка Authorization.
type Guard interface {
	Check(header string) error
}

// UserStore описывает хранилище пользователей.
type UserStore interface {
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateUser(ctx context.Context, user models.User) error
}

// Service меняет роли пользователей.
type Service struct {
	log    *slog.Logger
	guard  Guard
	users  UserStore
	events events.Publisher
}

// NewService создаёт Service.
func NewService(log *slog.Logger, guard Guard, users UserStore, publisher events.Publisher) *Service {
	return &Service{
		log:    log,
		guard:  guard,
		users:  users,
		events: publisher,
	}
}

// UpdateRole назначает пользователю роль. Сначала проверяются учётные данные
// администратора; если роль уже установлена, запись не обновляется.
func (s *Service) UpdateRole(ctx context.Context, authHeader, username string, role models.Role) error {
	const op = "role.Service.UpdateRole"
	log := s.log.With(sl.Op(op), slog.String("username", username), slog.String("role", string(role)))

	if err := s.guard.Check(authHeader); err != nil {
		log.Warn("admin check failed", sl.Err(err))
		return err
	}
	if !role.Valid() {
		return apperr.BadRequest(MsgInvalidRole)
	}

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		log.Error("failed to load user", sl.Err(err))
		return err
	}

	if user.Role == role {
		log.Info("user already has this role, nothing to update")
		return nil
	}

	updated := *user
	updated.Role = role
	if err := s.users.UpdateUser(ctx, updated); err != nil {
		log.Error("failed to update user role", sl.Err(err))
		return err
	}

	log.Info("user role changed", slog.String("previous", string(user.Role)))
	s.events.Publish(ctx, models.EventUserRoleChanged, username, role)
	return nil
}
