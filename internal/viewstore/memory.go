package viewstore

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	view    View
	expires time.Time
}

// MemoryStore keeps views in process. Views idle for longer than the TTL
// are dropped; a zero TTL keeps them until deleted.
type MemoryStore struct {
	mu    sync.Mutex
	ttl   time.Duration
	views map[string]*memoryEntry
	now   func() time.Time
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:   ttl,
		views: make(map[string]*memoryEntry),
		now:   time.Now,
	}
}

func (m *MemoryStore) Create(ctx context.Context, catalogName string) (*View, error) {
	if catalogName == "" {
		return nil, ErrInvalidView.Msg("catalog name is required")
	}
	v := newView(catalogName)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.evictLocked()
	m.views[v.Id] = &memoryEntry{view: *v, expires: m.expiry()}
	return v, nil
}

func (m *MemoryStore) Get(ctx context.Context, id string) (*View, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.lookupLocked(id)
	if !ok {
		return nil, ErrViewNotFound
	}
	v := e.view
	return &v, nil
}

func (m *MemoryStore) Update(ctx context.Context, id string, fn func(*View) error) (*View, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.lookupLocked(id)
	if !ok {
		return nil, ErrViewNotFound
	}
	v := e.view
	if err := fn(&v); err != nil {
		return nil, err
	}
	v.Id = id
	v.UpdatedAt = m.now().UTC()
	e.view = v
	e.expires = m.expiry()
	out := v
	return &out, nil
}

func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.views, id)
	return nil
}

func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.evictLocked()
	return len(m.views)
}

func (m *MemoryStore) Close() error {
	return nil
}

func (m *MemoryStore) expiry() time.Time {
	if m.ttl <= 0 {
		return time.Time{}
	}
	return m.now().Add(m.ttl)
}

func (m *MemoryStore) lookupLocked(id string) (*memoryEntry, bool) {
	e, ok := m.views[id]
	if !ok {
		return nil, false
	}
	if !e.expires.IsZero() && m.now().After(e.expires) {
		delete(m.views, id)
		return nil, false
	}
	return e, true
}

func (m *MemoryStore) evictLocked() {
	if m.ttl <= 0 {
		return
	}
	now := m.now()
	for id, e := range m.views {
		if now.After(e.expires) {
			delete(m.views, id)
		}
	}
}
