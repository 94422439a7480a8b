package cache

import (
	"context"
	"sync"

	"github.com/jboard/orchestrator/internal/models"
)

// Store хранилище записей кэша анализа.
type Store interface {
	// Get возвращает запись по ключу и признак её наличия.
	Get(ctx context.Context, key string) (models.AnalysisResult, bool, error)
	// Set сохраняет запись. Записи не истекают.
	Set(ctx context.Context, key string, value models.AnalysisResult) error
}

// MemoryStore неограниченное хранилище в памяти процесса.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]models.AnalysisResult
}

// NewMemoryStore создаёт пустое хранилище.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]models.AnalysisResult)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (models.AnalysisResult, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value models.AnalysisResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
	return nil
}

// Len возвращает количество записей.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
