package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jboard/orchestrator/internal/config"
	"github.com/jboard/orchestrator/internal/models"
)

// RedisStore хранилище в redis, общее для нескольких экземпляров оркестратора.
// Записи сохраняются в JSON без срока жизни.
type RedisStore struct {
	Db     *redis.Client
	prefix string
}

// NewRedisStore подключается к redis и проверяет соединение.
func NewRedisStore(ctx context.Context, cfg config.RedisConnection) (*RedisStore, error) {
	const op = "cache.NewRedisStore"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.AddressRedis,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.TimeoutRedis,
		WriteTimeout: cfg.TimeoutRedis,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &RedisStore{Db: db, prefix: cfg.KeyPrefix}, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) (models.AnalysisResult, bool, error) {
	const op = "cache.RedisStore.Get"
	var result models.AnalysisResult
	val, err := s.Db.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return result, false, nil
	}
	if err != nil {
		return result, false, fmt.Errorf("%s: %w", op, err)
	}
	if err := json.Unmarshal(val, &result); err != nil {
		return result, false, fmt.Errorf("%s: %w", op, err)
	}
	return result, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value models.AnalysisResult) error {
	const op = "cache.RedisStore.Set"
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.Db.Set(ctx, s.prefix+key, data, 0).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Close закрывает соединение с redis.
func (s *RedisStore) Close() error {
	return s.Db.Close()
}
