package storage

import (
	"context"
	"sync"
)

// Memory is an in-memory Blobs implementation for tests.
type Memory struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

// NewMemory creates an empty in-memory blob store.
func NewMemory() *Memory {
	return &Memory{blobs: make(map[string][]byte)}
}

// Get returns the blob stored under key, or ok=false if absent.
func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.blobs[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

// Set stores the blob under key, replacing any previous value.
func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	m.blobs[key] = v
	return nil
}
