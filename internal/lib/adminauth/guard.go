// Package adminauth проверяет статические учётные данные администратора,
// переданные в заголовке Authorization: Basic.
//
// Учётные данные одни на всю систему и задаются конфигурацией в виде
// base64("username:password"). Сравнение точное, с учётом регистра.
package adminauth

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/jboard/orchestrator/internal/lib/apperr"
)

const basicPrefix = "Basic "

// Сообщения ошибок, которые уходят клиенту.
const (
	MsgBasicRequired      = "Basic authentication required"
	MsgInvalidCredentials = "Invalid admin credentials"
)

// ErrNoCredentials учётные данные администратора не заданы в конфигурации.
var ErrNoCredentials = errors.New("admin credentials are not configured")

// Guard проверяет заголовок Authorization против учётных данных администратора.
type Guard struct {
	expected []byte
}

// NewGuard создаёт Guard из base64-строки конфигурации.
func NewGuard(encoded string) (*Guard, error) {
	const op = "adminauth.NewGuard"
	if strings.TrimSpace(encoded) == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrNoCredentials)
	}
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%s: decode configured credentials: %w", op, err)
	}
	if len(decoded) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrNoCredentials)
	}
	return &Guard{expected: decoded}, nil
}

// Check проверяет значение заголовка Authorization.
//
// Нет заголовка или префикса "Basic " — Unauthorized("Basic authentication required").
// Несовпадение — Unauthorized("Invalid admin credentials").
// Полезная нагрузка не в base64 — ошибка декодирования возвращается как есть,
// без приведения к Unauthorized.
func (g *Guard) Check(header string) error {
	const op = "adminauth.Check"
	if !strings.HasPrefix(header, basicPrefix) {
		return apperr.Unauthorized(MsgBasicRequired)
	}
	provided, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, basicPrefix))
	if err != nil {
		return fmt.Errorf("%s: decode provided credentials: %w", op, err)
	}
	if subtle.ConstantTimeCompare(provided, g.expected) != 1 {
		return apperr.Unauthorized(MsgInvalidCredentials)
	}
	return nil
}

// Encode кодирует пару логин/пароль в формат конфигурации и заголовка.
func Encode(username, password string) string {
	return base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
}
