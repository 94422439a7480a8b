package cache

import (
	"context"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"github.com/jboard/orchestrator/internal/lib/sl"
	"github.com/jboard/orchestrator/internal/models"
)

// Analyzer нижележащий сервис анализа соответствия.
type Analyzer interface {
	AnalyseMatch(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error)
}

// AnalysisCache запоминает ответы Analyzer по нормализованному ключу.
//
// Попадание возвращает сохранённый результат без обращения к Analyzer.
// Промах вызывает Analyzer вне каких-либо блокировок и сохраняет результат.
// Ошибка Analyzer возвращается без изменений, запись не создаётся.
// Одновременные промахи по одному ключу объединяются в один вызов, если это
// не отключено через WithoutCoalescing.
type AnalysisCache struct {
	analyzer Analyzer
	store    Store
	log      *slog.Logger
	metrics  *Metrics
	group    singleflight.Group
	coalesce bool
}

// Option настраивает AnalysisCache.
type Option func(*AnalysisCache)

// WithoutCoalescing отключает объединение одновременных промахов.
func WithoutCoalescing() Option {
	return func(c *AnalysisCache) {
		c.coalesce = false
	}
}

// WithMetrics включает счётчики попаданий и промахов.
func WithMetrics(m *Metrics) Option {
	return func(c *AnalysisCache) {
		c.metrics = m
	}
}

// NewAnalysisCache создаёт кэш поверх Analyzer и Store.
func NewAnalysisCache(analyzer Analyzer, store Store, log *slog.Logger, opts ...Option) *AnalysisCache {
	c := &AnalysisCache{
		analyzer: analyzer,
		store:    store,
		log:      log,
		coalesce: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Analyse возвращает результат анализа для позиции и набора навыков.
func (c *AnalysisCache) Analyse(ctx context.Context, position string, skills []string) (*models.AnalysisResult, error) {
	const op = "cache.AnalysisCache.Analyse"
	key := Key(position, skills)
	log := c.log.With(sl.Op(op), slog.String("key", key))

	if res, ok := c.lookup(ctx, log, key); ok {
		c.metrics.hit()
		log.Debug("analysis cache hit")
		return res, nil
	}
	c.metrics.miss()

	if !c.coalesce {
		return c.compute(ctx, log, key, position, skills)
	}

	// вызов продолжается, даже если запрос, начавший его, отменён:
	// его результат ждут другие запросы с тем же ключом
	v, err, shared := c.group.Do(key, func() (any, error) {
		return c.compute(context.WithoutCancel(ctx), log, key, position, skills)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		log.Debug("analysis shared with concurrent request")
	}
	res := *v.(*models.AnalysisResult)
	return &res, nil
}

func (c *AnalysisCache) lookup(ctx context.Context, log *slog.Logger, key string) (*models.AnalysisResult, bool) {
	res, ok, err := c.store.Get(ctx, key)
	if err != nil {
		log.Warn("failed to read analysis cache, treating as miss", sl.Err(err))
		return nil, false
	}
	if !ok {
		return nil, false
	}
	return &res, true
}

func (c *AnalysisCache) compute(ctx context.Context, log *slog.Logger, key, position string, skills []string) (*models.AnalysisResult, error) {
	// запись могла появиться, пока ждали своей очереди
	if res, ok := c.lookup(ctx, log, key); ok {
		return res, nil
	}

	log.Info("analysis cache miss, calling analysis service",
		slog.String("position", position), slog.Any("skills", skills))

	res, err := c.analyzer.AnalyseMatch(ctx, models.AnalysisRequest{Position: position, Skills: skills})
	if err != nil {
		return nil, err
	}
	if res == nil {
		res = &models.AnalysisResult{}
	}
	if err := c.store.Set(ctx, key, *res); err != nil {
		log.Warn("failed to store analysis result", sl.Err(err))
	}
	return res, nil
}
