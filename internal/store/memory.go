package store

import (
	"context"
	"sync"
)

// Memory is a process-local KV. Nothing survives the process.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string

	// FailSave and FailRemove, when set, are returned by every Save or
	// Remove. Used to exercise write-failure paths.
	FailSave   error
	FailRemove error
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Load(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Save(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSave != nil {
		return m.FailSave
	}
	m.data[key] = value
	return nil
}

func (m *Memory) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailRemove != nil {
		return m.FailRemove
	}
	delete(m.data, key)
	return nil
}

func (m *Memory) Close() error { return nil }
