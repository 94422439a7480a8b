// Package models содержит доменные модели оркестратора: пользователя, роль,
// навыки, вакансии и результат анализа соответствия.
package models

import "strings"

// Role роль пользователя в системе.
type Role string

const (
	// RoleFree базовая роль, выдаётся при регистрации.
	RoleFree Role = "free"
	// RolePremium расширенная роль, назначается администратором.
	RolePremium Role = "premium"
)

// ParseRole разбирает роль без учёта регистра ("FREE", "free", "Premium").
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleFree:
		return RoleFree, true
	case RolePremium:
		return RolePremium, true
	}
	return "", false
}

// MarshalText сериализует роль так же, как её хранит сервис пользователей: "FREE", "PREMIUM".
func (r Role) MarshalText() ([]byte, error) {
	return []byte(strings.ToUpper(string(r))), nil
}

// UnmarshalText принимает роль как "FREE" или "free".
// Неизвестное значение сохраняется как есть и отсекается через Valid.
func (r *Role) UnmarshalText(text []byte) error {
	if parsed, ok := ParseRole(string(text)); ok {
		*r = parsed
		return nil
	}
	*r = Role(text)
	return nil
}

// Valid сообщает, известна ли роль.
func (r Role) Valid() bool {
	return r == RoleFree || r == RolePremium
}

// Полномочия, которыми оперируют проверки доступа.
const (
	AuthorityFree    = "ROLE_FREE"
	AuthorityPremium = "ROLE_PREMIUM"
)

// Authorities возвращает набор полномочий для роли.
// Premium включает в себя полномочия free.
func Authorities(role Role) []string {
	if role == RolePremium {
		return []string{AuthorityPremium, AuthorityFree}
	}
	return []string{AuthorityFree}
}

// User пользователь в том виде, в котором его хранит сервис пользователей.
type User struct {
	ID       string `json:"id,omitempty"`
	Username string `json:"username"`
	Password string `json:"password"` // bcrypt-хэш пароля
	Role     Role   `json:"role"`
}
