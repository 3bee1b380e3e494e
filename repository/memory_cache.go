package repository

import (
	"context"
	"sync"
)

const defaultMemoryCacheEntries = 1024

// MemoryCache is a bounded in-process cache. When full it is emptied and
// starts over.
type MemoryCache struct {
	mu         sync.RWMutex
	data       map[string]string
	maxEntries int
}

func NewMemoryCache(maxEntries int) *MemoryCache {
	if maxEntries <= 0 {
		maxEntries = defaultMemoryCacheEntries
	}
	return &MemoryCache{
		data:       make(map[string]string),
		maxEntries: maxEntries,
	}
}

func (m *MemoryCache) Get(ctx context.Context, key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.data[key]
	return val, ok
}

func (m *MemoryCache) Set(ctx context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.data[key]; !exists && len(m.data) >= m.maxEntries {
		m.data = make(map[string]string, m.maxEntries)
	}
	m.data[key] = value
	return nil
}

func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
