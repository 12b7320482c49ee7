package slot

import (
	"context"
	"sync"
)

// Memory implements Store on a map, for tests and ephemeral runs.
type Memory struct {
	mu sync.RWMutex
	m  map[string][]byte
}

var _ Store = (*Memory)(nil)

// NewMemory returns an empty in-memory slot store.
func NewMemory() *Memory {
	return &Memory{m: make(map[string][]byte)}
}

// Get reads the payload stored under name.
func (s *Memory) Get(ctx context.Context, name string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	payload, ok := s.m[name]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(payload))
	copy(out, payload)
	return out, true, nil
}

// Put overwrites the slot with payload.
func (s *Memory) Put(ctx context.Context, name string, payload []byte) error {
	stored := make([]byte, len(payload))
	copy(stored, payload)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[name] = stored
	return nil
}

// Delete removes the slot.
func (s *Memory) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, name)
	return nil
}

// Close is a no-op.
func (s *Memory) Close() error {
	return nil
}
