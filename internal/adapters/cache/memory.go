package cache

import (
	"context"
	"sync"

	"conferencecentral/internal/domain"
)

// memoryStore is an in-process CacheStore for development and tests.
type memoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore returns an in-memory CacheStore.
func NewMemoryStore() domain.CacheStore {
	return &memoryStore{values: make(map[string]string)}
}

func (s *memoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key], nil
}

func (s *memoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *memoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
