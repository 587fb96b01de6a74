package cart

import (
	"context"
	"sync"
	"time"
)

// MemoryStorage est une implémentation en mémoire de Storage, utilisée par les
// tests et utilisable en développement sans Redis.
type MemoryStorage struct {
	mu        sync.Mutex
	values    map[string]string
	published map[string][]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		values:    make(map[string]string),
		published: make(map[string][]string),
	}
}

func (s *MemoryStorage) Read(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key], nil
}

func (s *MemoryStorage) Write(_ context.Context, key, payload string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = payload
	return nil
}

func (s *MemoryStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

func (s *MemoryStorage) Publish(_ context.Context, channel, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.published[channel] = append(s.published[channel], message)
	return nil
}

// Seed écrit un contenu brut sous une clé (pour simuler un état persistant).
func (s *MemoryStorage) Seed(key, payload string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = payload
}

// Published retourne les messages publiés sur un canal.
func (s *MemoryStorage) Published(channel string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.published[channel]...)
}
