package session

import (
	"context"
	"sync"
	"time"

	"moneywise/internal/domain"
)

// MemoryStore is the default in-process Store
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
	now      func() time.Time
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*domain.Session), now: time.Now}
}

func (m *MemoryStore) Create(_ context.Context, s *domain.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s.Clone()
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (*domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s.Clone(), nil
}

func (m *MemoryStore) Update(_ context.Context, id string, fn func(s *domain.Session) error) (*domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	current, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	next := current.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	next.Version++
	next.UpdatedAt = m.now()
	m.sessions[id] = next
	return next.Clone(), nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(m.sessions, id)
	return nil
}

func (m *MemoryStore) Sweep(_ context.Context, cutoff time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, s := range m.sessions {
		if s.UpdatedAt.Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed, nil
}
