package exam

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// memoryStore is the reference transient backend: a read-mostly catalog map
// plus an append-only result slice guarded by one lock.
type memoryStore struct {
	mu      sync.RWMutex
	tests   map[int]Test
	order   []int
	results []Result
}

// NewMemoryStore builds an in-memory store seeded with the given tests.
func NewMemoryStore(tests ...Test) Store {
	m := &memoryStore{tests: map[int]Test{}}
	for _, t := range tests {
		if _, ok := m.tests[t.ID]; !ok {
			m.order = append(m.order, t.ID)
		}
		m.tests[t.ID] = t
	}
	return m
}

func (m *memoryStore) PutTest(_ context.Context, t Test) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tests[t.ID]; !ok {
		m.order = append(m.order, t.ID)
	}
	m.tests[t.ID] = t
	return nil
}

func (m *memoryStore) ListTests(_ context.Context) ([]TestSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]TestSummary, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.tests[id].Summary())
	}
	return out, nil
}

func (m *memoryStore) GetTest(_ context.Context, id int) (PublicTest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.tests[id]
	if !ok {
		return PublicTest{}, ErrTestNotFound
	}
	return t.Public(), nil
}

func (m *memoryStore) Authoritative(_ context.Context, id int) (Test, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.tests[id]
	if !ok {
		return Test{}, ErrTestNotFound
	}
	return t, nil
}

func (m *memoryStore) Record(_ context.Context, r Result) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r.ID = uuid.NewString()
	m.results = append(m.results, r)
	return r, nil
}

func (m *memoryStore) ListForUser(_ context.Context, userID string) ([]ResultSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []ResultSummary{}
	for _, r := range m.results {
		if r.UserID == userID {
			out = append(out, r.Summarize())
		}
	}
	return out, nil
}
