package models

import "time"

// Типы событий учётной записи.
const (
	EventUserRegistered      = "user.registered"
	EventUserPasswordChanged = "user.password_changed"
	EventUserRoleChanged     = "user.role_changed"
	EventUserDeleted         = "user.deleted"
)

// AccountEvent событие изменения учётной записи пользователя.
type AccountEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Username   string    `json:"username"`
	Role       Role      `json:"role,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
