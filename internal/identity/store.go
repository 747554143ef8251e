package identity

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

var (
	// ErrEmailTaken is returned when the email is already registered.
	ErrEmailTaken = errors.New("user already exists")
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user not found")
)

// User is a registered principal. PasswordHash never leaves the service: the
// JSON tag keeps it out of every outbound response.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// Store holds registered principals. Create must be an atomic
// check-and-insert on the exact (case-sensitive) email: under concurrent
// registration of the same email exactly one call succeeds and the rest see
// ErrEmailTaken.
type Store interface {
	Create(ctx context.Context, name, email, passwordHash string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
}

type memoryStore struct {
	mu      sync.RWMutex
	byEmail map[string]User
	byID    map[string]User
}

// NewMemoryStore builds the transient in-memory identity store.
func NewMemoryStore() Store {
	return &memoryStore{byEmail: map[string]User{}, byID: map[string]User{}}
}

func (m *memoryStore) Create(_ context.Context, name, email, passwordHash string) (User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byEmail[email]; ok {
		return User{}, ErrEmailTaken
	}
	u := User{ID: uuid.NewString(), Name: name, Email: email, PasswordHash: passwordHash}
	m.byEmail[email] = u
	m.byID[u.ID] = u
	return u, nil
}

func (m *memoryStore) GetByEmail(_ context.Context, email string) (User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.byEmail[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (m *memoryStore) GetByID(_ context.Context, id string) (User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}
