// Package storage implementa el "local storage" clave-valor donde se refleja la sesión.
package storage

import (
	"context"
	"sync"

	"github.com/jhoicas/tunezone-api/internal/domain/repository"
)

var _ repository.KeyValueStore = (*MemoryStore)(nil)

// MemoryStore almacenamiento volátil (se pierde al reiniciar el proceso).
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryStore construye el store vacío.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.data, k)
	}
	return nil
}
