package session

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryStore builds an in-process session store. Used when Redis is not
// configured (single-instance dev) and by tests.
func NewMemoryStore() Store {
	return &memoryStore{data: map[string]string{}}
}

func (s *memoryStore) key(sessionID, field string) string {
	return sessionID + ":" + field
}

func (s *memoryStore) Get(_ context.Context, sessionID, field string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.data[s.key(sessionID, field)]
	return value, ok, nil
}

func (s *memoryStore) Set(_ context.Context, sessionID, field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[s.key(sessionID, field)] = value
	return nil
}

func (s *memoryStore) Delete(_ context.Context, sessionID, field string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, s.key(sessionID, field))
	return nil
}
