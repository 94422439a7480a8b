// Package jwt реализует выпуск и проверку токенов личности пользователя.
//
// Токен — подписанный HMAC-SHA256 JWT с издателем "jboard", именем пользователя
// в subject и ролью в отдельном claim. Срок жизни — один час, отсчитываемый по
// фиксированным часам UTC-3, а не по локальной зоне сервера.
package jwt

import (
	"time"

	"github.com/jboard/orchestrator/internal/models"
)

const (
	// Issuer издатель токенов.
	Issuer = "jboard"
	// TokenTTL срок жизни токена.
	TokenTTL = time.Hour
)

// zone фиксированное смещение, в котором считается срок действия.
var zone = time.FixedZone("UTC-3", -3*60*60)

// Maker описывает выпуск и проверку токенов.
type Maker interface {
	// Issue выпускает токен для личности.
	Issue(identity models.Identity) (string, error)
	// Validate проверяет токен. Любая ошибка проверки даёт ok == false.
	Validate(token string) (models.Identity, bool)
}

// MakerImpl реализует Maker на симметричном секрете.
type MakerImpl struct {
	secretKey string
	now       func() time.Time
}

// Option настраивает MakerImpl.
type Option func(*MakerImpl)

// WithClock подменяет источник текущего времени.
func WithClock(now func() time.Time) Option {
	return func(m *MakerImpl) {
		m.now = now
	}
}

// NewJWTMaker создаёт MakerImpl с секретом подписи.
func NewJWTMaker(secretKey string, opts ...Option) *MakerImpl {
	m := &MakerImpl{
		secretKey: secretKey,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// expiresAt возвращает момент истечения токена, выпущенного сейчас.
func (j *MakerImpl) expiresAt() time.Time {
	return j.now().In(zone).Add(TokenTTL)
}
