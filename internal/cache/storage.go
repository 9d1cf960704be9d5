package cache

import (
	"slices"
	"sync"
)

// Storage persists cache entries. One entry is kept per Key.Prefix.
//
// Implementations must be safe for concurrent use.
type Storage interface {
	// Retrieve returns nil without error when nothing is stored under prefix.
	Retrieve(prefix string) (*Entry, error)
	Store(e *Entry) error
	Remove(prefix string) error
	Keys() ([]string, error)
	Close() error
}

type MemoryStorage struct {
	mtx     sync.RWMutex
	entries map[string]*Entry
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		entries: make(map[string]*Entry),
	}
}

func (m *MemoryStorage) Retrieve(prefix string) (*Entry, error) {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	return m.entries[prefix], nil
}

func (m *MemoryStorage) Store(e *Entry) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.entries[e.Key().Prefix()] = e
	return nil
}

func (m *MemoryStorage) Remove(prefix string) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	delete(m.entries, prefix)
	return nil
}

func (m *MemoryStorage) Keys() ([]string, error) {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys, nil
}

func (m *MemoryStorage) Close() error {
	return nil
}
