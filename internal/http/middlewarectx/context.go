package middlewarectx

import (
	"context"

	"github.com/jboard/orchestrator/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// PrincipalKey ключ аутентифицированного участника в контексте.
const PrincipalKey Key = "principal"

// WithPrincipal возвращает контекст с установленным участником.
func WithPrincipal(ctx context.Context, p models.Principal) context.Context {
	return context.WithValue(ctx, PrincipalKey, p)
}

// PrincipalFromContext возвращает участника запроса, если он установлен.
func PrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	p, ok := ctx.Value(PrincipalKey).(models.Principal)
	return p, ok
}

// IdentityFromContext возвращает личность из токена, если запрос аутентифицирован.
func IdentityFromContext(ctx context.Context) (models.Identity, bool) {
	p, ok := PrincipalFromContext(ctx)
	if !ok {
		return models.Identity{}, false
	}
	return p.Identity, true
}
