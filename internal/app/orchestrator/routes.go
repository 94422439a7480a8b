package orchestrator

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	"github.com/jboard/orchestrator/internal/http/handlers/admin/role"
	"github.com/jboard/orchestrator/internal/http/handlers/analysis/analyse"
	"github.com/jboard/orchestrator/internal/http/handlers/auth/account"
	"github.com/jboard/orchestrator/internal/http/handlers/auth/login"
	"github.com/jboard/orchestrator/internal/http/handlers/auth/password"
	"github.com/jboard/orchestrator/internal/http/handlers/auth/register"
	"github.com/jboard/orchestrator/internal/http/handlers/health"
	joblist "github.com/jboard/orchestrator/internal/http/handlers/job/list"
	"github.com/jboard/orchestrator/internal/http/handlers/skill/add"
	skillclear "github.com/jboard/orchestrator/internal/http/handlers/skill/clear"
	skilllist "github.com/jboard/orchestrator/internal/http/handlers/skill/list"
	"github.com/jboard/orchestrator/internal/http/handlers/skill/remove"
	"github.com/jboard/orchestrator/internal/http/middlewarectx"
	"github.com/jboard/orchestrator/internal/models"
	analysisservice "github.com/jboard/orchestrator/internal/services/analysis"
	authservice "github.com/jboard/orchestrator/internal/services/auth"
	jobservice "github.com/jboard/orchestrator/internal/services/job"
	roleservice "github.com/jboard/orchestrator/internal/services/role"
	skillservice "github.com/jboard/orchestrator/internal/services/skill"
)

// Services зависимости маршрутов.
type Services struct {
	Auth     *authservice.Service
	Role     *roleservice.Service
	Skill    *skillservice.Service
	Job      *jobservice.Service
	Analysis *analysisservice.Service

	Tokens   middlewarectx.TokenValidator
	Users    middlewarectx.UserLookup
	Limiter  *rate.Limiter
	Registry *prometheus.Registry
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, s Services) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		middlewarectx.IdentityGate(logger, s.Tokens, s.Users),
	)

	r.Route("/api", func(r chi.Router) {
		// Вход и регистрация открыты, но ограничены по частоте
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.RateLimit(logger, s.Limiter))
			r.Post("/auth/login", login.New(logger, s.Auth).ServeHTTP)
			r.Post("/auth/register", register.New(logger, s.Auth).ServeHTTP)
		})

		r.Get("/jobs", joblist.New(logger, s.Job).ServeHTTP)

		// Доступ по Basic-учётке администратора, проверяется в сервисе
		r.Put("/admin/change-user-role", role.New(logger, s.Role).ServeHTTP)

		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.RequireIdentity(logger))
			r.Use(middlewarectx.RequireAuthority(logger, models.AuthorityFree))

			r.Put("/auth/update-password", password.New(logger, s.Auth).ServeHTTP)
			r.Delete("/auth/delete-account", account.New(logger, s.Auth).ServeHTTP)

			r.Get("/skills", skilllist.New(logger, s.Skill).ServeHTTP)
			r.Post("/skills", add.New(logger, s.Skill).ServeHTTP)
			r.Put("/skills", remove.New(logger, s.Skill).ServeHTTP)
			r.Delete("/skills", skillclear.New(logger, s.Skill).ServeHTTP)

			r.Post("/analysis", analyse.New(logger, s.Analysis).ServeHTTP)
		})
	})

	r.Get("/health", health.New().ServeHTTP)
	r.Handle("/metrics", promhttp.HandlerFor(s.Registry, promhttp.HandlerOpts{}))
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
