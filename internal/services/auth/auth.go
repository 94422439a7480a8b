// Package auth содержит логику учётных записей: регистрацию, вход,
// смену пароля и удаление аккаунта.
package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jboard/orchestrator/internal/events"
	"github.com/jboard/orchestrator/internal/lib/apperr"
	"github.com/jboard/orchestrator/internal/lib/jwt"
	"github.com/jboard/orchestrator/internal/lib/password"
	"github.com/jboard/orchestrator/internal/lib/sl"
	"github.com/jboard/orchestrator/internal/models"
)

// Сообщения ошибок, которые уходят клиенту.
const (
	MsgInvalidLogin       = "invalid username or password"
	MsgOldPasswordInvalid = "Old password does not match"
)

// UserStore описывает хранилище пользователей.
type UserStore interface {
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	RegisterUser(ctx context.Context, user models.User) error
	UpdateUser(ctx context.Context, user models.User) error
	DeleteAccount(ctx context.Context, username string) error
}

// Service отвечает за учётные записи и выпуск токенов.
type Service struct {
	log    *slog.Logger
	users  UserStore
	tokens jwt.Maker
	events events.Publisher
}

// NewService создаёт Service.
func NewService(log *slog.Logger, users UserStore, tokens jwt.Maker, publisher events.Publisher) *Service {
	return &Service{
		log:    log,
		users:  users,
		tokens: tokens,
		events: publisher,
	}
}

// Register создаёт пользователя с ролью free. Пароль хэшируется до отправки в хранилище.
func (s *Service) Register(ctx context.Context, username, rawPassword string) error {
	const op = "auth.Service.Register"
	log := s.log.With(sl.Op(op), slog.String("username", username))

	hashed, err := password.Hash(rawPassword)
	if err != nil {
		log.Error("failed to hash password", sl.Err(err))
		return apperr.Internal("failed to hash password", err)
	}

	user := models.User{
		Username: username,
		Password: hashed,
		Role:     models.RoleFree,
	}
	if err := s.users.RegisterUser(ctx, user); err != nil {
		log.Error("failed to register user", sl.Err(err))
		return err
	}

	log.Info("user registered")
	s.events.Publish(ctx, models.EventUserRegistered, username, models.RoleFree)
	return nil
}

// Login проверяет пароль и выпускает токен.
// Неизвестный пользователь и неверный пароль неразличимы для клиента.
func (s *Service) Login(ctx context.Context, username, rawPassword string) (string, error) {
	const op = "auth.Service.Login"
	log := s.log.With(sl.Op(op), slog.String("username", username))

	user, err := s.users.GetUserByUsername(ctx, username)
	if errors.Is(err, apperr.ErrNotFound) {
		log.Info("login failed: user not found")
		return "", apperr.Unauthorized(MsgInvalidLogin)
	}
	if err != nil {
		log.Error("failed to load user", sl.Err(err))
		return "", err
	}

	if err := password.Compare(user.Password, rawPassword); err != nil {
		if !errors.Is(err, password.ErrMismatch) {
			log.Warn("stored password hash is unusable", sl.Err(err))
		}
		log.Info("login failed: wrong password")
		return "", apperr.Unauthorized(MsgInvalidLogin)
	}

	token, err := s.tokens.Issue(models.Identity{Username: user.Username, Role: user.Role})
	if err != nil {
		log.Error("failed to issue token", sl.Err(err))
		return "", err
	}
	log.Info("user logged in")
	return token, nil
}

// UpdatePassword меняет пароль, если старый пароль верен.
// Если новый пароль совпадает с текущим, запись не обновляется.
func (s *Service) UpdatePassword(ctx context.Context, username, oldPassword, newPassword string) error {
	const op = "auth.Service.UpdatePassword"
	log := s.log.With(sl.Op(op), slog.String("username", username))

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		log.Error("failed to load user", sl.Err(err))
		return err
	}

	if err := password.Compare(user.Password, oldPassword); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return apperr.Forbidden(MsgOldPasswordInvalid)
		}
		log.Error("stored password hash is unusable", sl.Err(err))
		return apperr.Internal("failed to verify password", err)
	}

	if password.Matches(user.Password, newPassword) {
		log.Info("new password equals current one, nothing to update")
		return nil
	}

	hashed, err := password.Hash(newPassword)
	if err != nil {
		log.Error("failed to hash password", sl.Err(err))
		return apperr.Internal("failed to hash password", err)
	}

	updated := *user
	updated.Password = hashed
	if err := s.users.UpdateUser(ctx, updated); err != nil {
		log.Error("failed to update user", sl.Err(err))
		return err
	}

	log.Info("password changed")
	s.events.Publish(ctx, models.EventUserPasswordChanged, username, user.Role)
	return nil
}

// DeleteAccount удаляет учётную запись.
func (s *Service) DeleteAccount(ctx context.Context, username string) error {
	const op = "auth.Service.DeleteAccount"
	log := s.log.With(sl.Op(op), slog.String("username", username))

	if err := s.users.DeleteAccount(ctx, username); err != nil {
		log.Error("failed to delete account", sl.Err(err))
		return err
	}

	log.Info("account deleted")
	s.events.Publish(ctx, models.EventUserDeleted, username, "")
	return nil
}
