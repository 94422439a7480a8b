package jwt

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jboard/orchestrator/internal/lib/apperr"
	"github.com/jboard/orchestrator/internal/models"
)

// ErrEmptySecret секрет подписи не задан.
var ErrEmptySecret = errors.New("signing secret is empty")

// CustomClaims данные токена: стандартные claims и роль пользователя.
type CustomClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Issue создаёт токен с iss=jboard, sub=username, role и exp через час.
//
// Пустой секрет — ошибка вида Internal, токен не выпускается.
func (j *MakerImpl) Issue(identity models.Identity) (string, error) {
	const op = "jwt.Issue"
	if j.secretKey == "" {
		return "", apperr.Internal("failed to generate token", fmt.Errorf("%s: %w", op, ErrEmptySecret))
	}
	claims := CustomClaims{
		Role: string(identity.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   identity.Username,
			ExpiresAt: jwt.NewNumericDate(j.expiresAt()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(j.secretKey))
	if err != nil {
		return "", apperr.Internal("failed to generate token", fmt.Errorf("%s: %w", op, err))
	}
	return token, nil
}

// Validate проверяет подпись, издателя и срок действия токена.
func (j *MakerImpl) Validate(tokenStr string) (models.Identity, bool) {
	claims, err := j.parse(tokenStr)
	if err != nil {
		return models.Identity{}, false
	}
	role, ok := models.ParseRole(claims.Role)
	if !ok || claims.Subject == "" {
		return models.Identity{}, false
	}
	return models.Identity{Username: claims.Subject, Role: role}, true
}

func (j *MakerImpl) parse(tokenStr string) (*CustomClaims, error) {
	const op = "jwt.parse"
	if tokenStr == "" || j.secretKey == "" {
		return nil, fmt.Errorf("%s: empty token or secret", op)
	}
	token, err := jwt.ParseWithClaims(tokenStr, &CustomClaims{}, func(_ *jwt.Token) (any, error) {
		return []byte(j.secretKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: invalid token", op)
	}
	return claims, nil
}
