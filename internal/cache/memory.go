package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     []byte
	tags      []string
	expiresAt time.Time
}

// Memory is an in-process Cache used when no Redis address is configured
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	tags    map[string]map[string]struct{}
	now     func() time.Time
}

// NewMemory creates an empty in-process cache
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]memoryEntry),
		tags:    make(map[string]map[string]struct{}),
		now:     time.Now,
	}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrMiss
	}
	if !m.now().Before(entry.expiresAt) {
		m.mu.Lock()
		if current, ok := m.entries[key]; ok && !m.now().Before(current.expiresAt) {
			m.removeLocked(key)
		}
		m.mu.Unlock()
		return nil, ErrMiss
	}
	return entry.value, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte, tags []string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.removeLocked(key)
	m.entries[key] = memoryEntry{value: value, tags: tags, expiresAt: m.now().Add(ttl)}
	for _, tag := range tags {
		keys, ok := m.tags[tag]
		if !ok {
			keys = make(map[string]struct{})
			m.tags[tag] = keys
		}
		keys[key] = struct{}{}
	}
	return nil
}

func (m *Memory) InvalidateTags(_ context.Context, tags ...string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for _, tag := range tags {
		for key := range m.tags[tag] {
			if _, ok := m.entries[key]; ok {
				m.removeLocked(key)
				removed++
			}
		}
		delete(m.tags, tag)
	}
	return removed, nil
}

// removeLocked drops key and its tag index entries; caller holds the write lock
func (m *Memory) removeLocked(key string) {
	entry, ok := m.entries[key]
	if !ok {
		return
	}
	delete(m.entries, key)
	for _, tag := range entry.tags {
		if keys, ok := m.tags[tag]; ok {
			delete(keys, key)
			if len(keys) == 0 {
				delete(m.tags, tag)
			}
		}
	}
}

// Len returns the number of stored entries, expired ones included
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

func (m *Memory) HealthCheck(context.Context) error { return nil }

func (m *Memory) Close() error { return nil }
