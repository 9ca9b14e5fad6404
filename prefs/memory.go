package prefs

import (
	"context"
	"sync"

	"smartstock/models"
)

// Memory keeps encoded preferences in process memory.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory returns an empty in-memory repository.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Load(_ context.Context, key string) (models.Preferences, error) {
	m.mu.RLock()
	b, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return models.Preferences{}, ErrNotFound
	}
	return Decode(b)
}

func (m *Memory) Save(_ context.Context, key string, p models.Preferences) error {
	b, err := Encode(p)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.data[key] = b
	m.mu.Unlock()
	return nil
}
