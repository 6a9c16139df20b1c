package session

import (
	"context"
	"fmt"
	"sync"
)

// Manager is the single source of truth for the live session. It mirrors the
// token into the Store and notifies subscribers (the profile cache, the
// prompt) on every change. Constructed explicitly and injected; there is no
// package-level singleton.
//
// Until Restore runs, the manager reports logged-out so protected state is
// never shown speculatively.
type Manager struct {
	store Store

	mu     sync.Mutex
	token  string
	loaded bool
	nextID int
	subs   map[int]func(token string)
}

func NewManager(store Store) *Manager {
	return &Manager{store: store, subs: make(map[int]func(string))}
}

// Restore reads the persisted credential once at startup.
func (m *Manager) Restore(ctx context.Context) error {
	token, err := m.store.Read(ctx)
	if err != nil {
		return fmt.Errorf("restoring session: %w", err)
	}

	m.mu.Lock()
	m.token = token
	m.loaded = true
	m.mu.Unlock()

	if token != "" {
		m.notify(token)
	}
	return nil
}

// Login persists the token, flips the state and notifies subscribers.
func (m *Manager) Login(ctx context.Context, token string) error {
	if err := m.store.Save(ctx, token); err != nil {
		return fmt.Errorf("persisting token: %w", err)
	}

	m.mu.Lock()
	m.token = token
	m.loaded = true
	m.mu.Unlock()

	m.notify(token)
	return nil
}

// Logout clears the store and the in-memory token. It does not navigate;
// callers decide where the user lands next.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.store.Clear(ctx); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}

	m.mu.Lock()
	m.token = ""
	m.mu.Unlock()

	m.notify("")
	return nil
}

func (m *Manager) IsLoggedIn() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loaded && m.token != ""
}

// Token returns the live token, "" when logged out or not yet restored.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.loaded {
		return ""
	}
	return m.token
}

// Subscribe registers fn to run synchronously after every token change
// (login and logout; "" means logged out). The returned func detaches it.
func (m *Manager) Subscribe(fn func(token string)) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

func (m *Manager) notify(token string) {
	m.mu.Lock()
	fns := make([]func(string), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn(token)
	}
}
