package clients

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jboard/orchestrator/internal/lib/apperr"
	"github.com/jboard/orchestrator/internal/models"
)

// UserClient клиент хранилища пользователей.
type UserClient struct {
	*Client
}

// NewUserClient создаёт клиента хранилища пользователей.
func NewUserClient(c *Client) *UserClient {
	return &UserClient{Client: c}
}

// GetUserByUsername ищет пользователя по имени.
// Пустой ответ сервиса означает, что пользователя нет: возвращается apperr.ErrNotFound.
func (c *UserClient) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return c.getUser(ctx, "clients.UserClient.GetUserByUsername", "username", username)
}

func (c *UserClient) getUser(ctx context.Context, op, param, value string) (*models.User, error) {
	var user *models.User
	err := c.do(ctx, op, http.MethodGet, "/users", url.Values{param: {value}}, nil, &user)
	if errors.Is(err, errEmptyBody) || (err == nil && user == nil) {
		return nil, fmt.Errorf("%s: %w", op, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// RegisterUser создаёт пользователя. Пароль должен быть уже захэширован.
func (c *UserClient) RegisterUser(ctx context.Context, user models.User) error {
	return c.do(ctx, "clients.UserClient.RegisterUser", http.MethodPost, "/users", nil, user, nil)
}

// UpdateUser заменяет запись пользователя.
func (c *UserClient) UpdateUser(ctx context.Context, user models.User) error {
	return c.do(ctx, "clients.UserClient.UpdateUser", http.MethodPut, "/users", nil, user, nil)
}

// DeleteAccount удаляет пользователя.
func (c *UserClient) DeleteAccount(ctx context.Context, username string) error {
	return c.do(ctx, "clients.UserClient.DeleteAccount", http.MethodDelete, "/users",
		url.Values{"username": {username}}, nil, nil)
}
