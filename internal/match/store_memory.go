package match

import (
	"context"
	"sync"
)

// MemoryStore is a mutex-guarded in-memory registry used by tests and for
// development without Redis.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]*Match
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]*Match)}
}

func (s *MemoryStore) Get(ctx context.Context, host, opponent string) (*Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.items[pairKey(host, opponent)]
	if !ok {
		return nil, ErrNoMatch
	}
	return m.Copy(), nil
}

func (s *MemoryStore) Put(ctx context.Context, m *Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[pairKey(m.Host, m.Opponent)] = m.Copy()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, host, opponent string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, pairKey(host, opponent))
	return nil
}
