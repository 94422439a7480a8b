// Package middlewarectx содержит HTTP middleware оркестратора.
//
// IdentityGate извлекает Bearer-токен, проверяет его и кладёт участника запроса
// в контекст. Сам по себе он запросы не отклоняет: без токена или с неверным
// токеном запрос идёт дальше неаутентифицированным. Отказ в доступе выполняют
// RequireIdentity и RequireAuthority на защищённых маршрутах.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"

	"github.com/jboard/orchestrator/internal/http/response"
	"github.com/jboard/orchestrator/internal/lib/sl"
	"github.com/jboard/orchestrator/internal/models"
)

const bearerPrefix = "Bearer "

// TokenValidator проверяет токен личности.
type TokenValidator interface {
	Validate(token string) (models.Identity, bool)
}

// UserLookup загружает запись пользователя.
type UserLookup interface {
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// IdentityGate возвращает middleware, устанавливающий участника запроса.
func IdentityGate(log *slog.Logger, tokens TokenValidator, users UserLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.IdentityGate"

			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				next.ServeHTTP(w, r)
				return
			}

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			identity, ok := tokens.Validate(strings.TrimPrefix(header, bearerPrefix))
			if !ok {
				log.Info("invalid or expired token, continuing unauthenticated")
				next.ServeHTTP(w, r)
				return
			}

			user, err := users.GetUserByUsername(r.Context(), identity.Username)
			if err != nil {
				log.Error("failed to load user for token", slog.String("username", identity.Username), sl.Err(err))
				next.ServeHTTP(w, r)
				return
			}

			ctx := WithPrincipal(r.Context(), models.Principal{
				Identity:    identity,
				User:        *user,
				Authorities: models.Authorities(user.Role),
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireIdentity отвечает 401, если в запросе нет участника.
func RequireIdentity(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.RequireIdentity"
			if _, ok := PrincipalFromContext(r.Context()); !ok {
				log.Info("unauthenticated request to protected route",
					slog.String("op", op),
					slog.String("request_id", middleware.GetReqID(r.Context())),
					slog.String("path", r.URL.Path),
				)
				response.WriteStatus(w, r, http.StatusUnauthorized, response.MsgAuthRequired)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuthority отвечает 401 без участника и 403, если у него нет полномочия.
func RequireAuthority(log *slog.Logger, authority string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.RequireAuthority"
			p, ok := PrincipalFromContext(r.Context())
			if !ok {
				response.WriteStatus(w, r, http.StatusUnauthorized, response.MsgAuthRequired)
				return
			}
			if !p.HasAuthority(authority) {
				log.Info("authority missing",
					slog.String("op", op),
					slog.String("request_id", middleware.GetReqID(r.Context())),
					slog.String("username", p.Identity.Username),
					slog.String("authority", authority),
				)
				response.WriteStatus(w, r, http.StatusForbidden, response.MsgAccessDenied)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
