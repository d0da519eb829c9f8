package store

import (
	"context"
	"fmt"
	"sync"
)

// Memory is the in-process store used by tests and as a dependency-free
// default. Same semantics as the SQL stores: whole-document overwrite,
// last write wins.
type Memory struct {
	mu     sync.RWMutex
	nextID int
	users  map[string]memUser // email -> user
	blobs  map[string][]byte  // "uid/key" -> doc
	events []Event
	keys   map[string]struct{} // seen source event keys
}

type memUser struct {
	id   int
	hash string
}

func NewMemory() *Memory {
	return &Memory{
		users: make(map[string]memUser),
		blobs: make(map[string][]byte),
		keys:  make(map[string]struct{}),
	}
}

func blobKey(userID int, key string) string {
	return fmt.Sprintf("%d/%s", userID, key)
}

func (m *Memory) GetBlob(_ context.Context, userID int, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	doc, ok := m.blobs[blobKey(userID, key)]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(doc))
	copy(out, doc)
	return out, nil
}

func (m *Memory) PutBlob(_ context.Context, userID int, key string, doc []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(doc))
	copy(cp, doc)
	m.blobs[blobKey(userID, key)] = cp
	return nil
}

func (m *Memory) DeleteBlob(_ context.Context, userID int, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.blobs, blobKey(userID, key))
	return nil
}

func (m *Memory) CreateUser(_ context.Context, email, passwordHash string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.users[email]; exists {
		return 0, fmt.Errorf("email already exists")
	}
	m.nextID++
	m.users[email] = memUser{id: m.nextID, hash: passwordHash}
	return m.nextID, nil
}

func (m *Memory) UserByEmail(_ context.Context, email string) (int, string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[email]
	if !ok {
		return 0, "", ErrNotFound
	}
	return u.id, u.hash, nil
}

func (m *Memory) UserEmail(_ context.Context, userID int) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for email, u := range m.users {
		if u.id == userID {
			return email, nil
		}
	}
	return "", ErrNotFound
}

func (m *Memory) DeleteUser(_ context.Context, userID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for email, u := range m.users {
		if u.id == userID {
			delete(m.users, email)
		}
	}
	prefix := fmt.Sprintf("%d/", userID)
	for k := range m.blobs {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			delete(m.blobs, k)
		}
	}
	kept := m.events[:0]
	for _, ev := range m.events {
		if ev.UserID != userID {
			kept = append(kept, ev)
		}
	}
	m.events = kept
	return nil
}

func (m *Memory) LogEvent(_ context.Context, ev Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ev.SourceEventKey != "" {
		if _, dup := m.keys[ev.SourceEventKey]; dup {
			return nil
		}
		m.keys[ev.SourceEventKey] = struct{}{}
	}
	m.events = append(m.events, ev)
	return nil
}

// EventNames lists recorded event names in insertion order. Test helper.
func (m *Memory) EventNames() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, len(m.events))
	for i, ev := range m.events {
		names[i] = ev.Name
	}
	return names
}
