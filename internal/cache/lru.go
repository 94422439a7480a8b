package cache

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/jboard/orchestrator/internal/models"
)

// LRUStore хранилище в памяти с ограничением числа записей.
// При переполнении вытесняется давно не использованная запись.
type LRUStore struct {
	entries *lru.Cache[string, models.AnalysisResult]
}

// NewLRUStore создаёт хранилище на size записей.
func NewLRUStore(size int) (*LRUStore, error) {
	const op = "cache.NewLRUStore"
	entries, err := lru.New[string, models.AnalysisResult](size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &LRUStore{entries: entries}, nil
}

func (s *LRUStore) Get(_ context.Context, key string) (models.AnalysisResult, bool, error) {
	v, ok := s.entries.Get(key)
	return v, ok, nil
}

func (s *LRUStore) Set(_ context.Context, key string, value models.AnalysisResult) error {
	s.entries.Add(key, value)
	return nil
}

// Len возвращает количество записей.
func (s *LRUStore) Len() int {
	return s.entries.Len()
}
