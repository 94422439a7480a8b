// Package orchestrator собирает HTTP-приложение: клиенты нижележащих сервисов,
// кэш анализа, публикацию событий, сервисы и маршруты.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"github.com/jboard/orchestrator/internal/cache"
	"github.com/jboard/orchestrator/internal/clients"
	"github.com/jboard/orchestrator/internal/config"
	"github.com/jboard/orchestrator/internal/events"
	"github.com/jboard/orchestrator/internal/lib/adminauth"
	"github.com/jboard/orchestrator/internal/lib/jwt"
	"github.com/jboard/orchestrator/internal/lib/rabbitmq"
	"github.com/jboard/orchestrator/internal/lib/sl"
	analysisservice "github.com/jboard/orchestrator/internal/services/analysis"
	authservice "github.com/jboard/orchestrator/internal/services/auth"
	jobservice "github.com/jboard/orchestrator/internal/services/job"
	roleservice "github.com/jboard/orchestrator/internal/services/role"
	skillservice "github.com/jboard/orchestrator/internal/services/skill"
)

const shutdownTimeout = 15 * time.Second

// App HTTP-сервер оркестратора и ресурсы, которые надо закрыть при остановке.
type App struct {
	server  *http.Server
	logger  *slog.Logger
	closers []io.Closer
}

// New создаёт App по конфигурации.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "orchestrator.New"

	app := &App{logger: logger}

	guard, err := adminauth.NewGuard(cfg.Credentials)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	tokens := jwt.NewJWTMaker(cfg.JWTSecretKey)

	crud := clients.New(cfg.CrudURL, cfg.TimeoutUpstream, logger)
	users := clients.NewUserClient(crud)
	skills := clients.NewSkillClient(crud)
	jobs := clients.NewJobClient(crud)
	analyzer := clients.NewAnalysisClient(clients.New(cfg.AnalysisURL, cfg.TimeoutUpstream, logger))

	store, err := app.newStore(ctx, cfg.AnalysisCache, cfg.RedisConnection)
	if err != nil {
		app.close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	registry := prometheus.NewRegistry()
	opts := []cache.Option{cache.WithMetrics(cache.NewMetrics(registry))}
	if cfg.DisableCoalescing {
		opts = append(opts, cache.WithoutCoalescing())
	}
	analysisCache := cache.NewAnalysisCache(analyzer, store, logger, opts...)

	publisher, err := app.newPublisher(cfg.RabbitMQ)
	if err != nil {
		app.close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	skillService := skillservice.NewService(logger, skills)
	services := Services{
		Auth:     authservice.NewService(logger, users, tokens, publisher),
		Role:     roleservice.NewService(logger, guard, users, publisher),
		Skill:    skillService,
		Job:      jobservice.NewService(logger, jobs),
		Analysis: analysisservice.NewService(logger, skillService, analysisCache),
		Tokens:   tokens,
		Users:    users,
		Limiter:  rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst),
		Registry: registry,
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, services)

	app.server = &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return app, nil
}

// newStore выбирает хранилище кэша анализа.
func (a *App) newStore(ctx context.Context, cfg config.AnalysisCache, redisCfg config.RedisConnection) (cache.Store, error) {
	switch {
	case cfg.Backend == config.CacheBackendRedis:
		store, err := cache.NewRedisStore(ctx, redisCfg)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, store)
		a.logger.Info("analysis cache backed by redis", slog.String("addr", redisCfg.AddressRedis))
		return store, nil
	case cfg.MaxEntries > 0:
		a.logger.Info("analysis cache bounded", slog.Int("max_entries", cfg.MaxEntries))
		return cache.NewLRUStore(cfg.MaxEntries)
	default:
		return cache.NewMemoryStore(), nil
	}
}

// newPublisher подключается к RabbitMQ, если он настроен.
func (a *App) newPublisher(cfg config.RabbitMQ) (events.Publisher, error) {
	if cfg.URL == "" {
		a.logger.Info("account events disabled")
		return events.Nop{}, nil
	}
	conn, err := rabbitmq.Connect(cfg.URL, cfg.Retries, cfg.RetryDelay)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, conn)

	ch, err := rabbitmq.SetupChannel(conn, cfg.Exchange, rabbitmq.AccountQueues())
	if err != nil {
		return nil, err
	}
	publisher := events.NewAMQPPublisher(ch, cfg.Exchange, a.logger)
	// канал закрывается раньше соединения
	a.closers = append([]io.Closer{publisher}, a.closers...)
	return publisher, nil
}

// Handler возвращает корневой обработчик.
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Run запускает сервер и останавливает его при отмене ctx.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		return a.server.Shutdown(timeoutCtx)
	}
}

func (a *App) close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.logger.Warn("failed to close resource", sl.Err(err))
		}
	}
	a.closers = nil
}
