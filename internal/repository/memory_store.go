package repository

import "context"

// MemoryStore implements Store with an in-process map. Used by tests and
// by any caller that wants a throwaway session.
type MemoryStore struct {
	payloads map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{payloads: make(map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, name string) ([]byte, error) {
	p, ok := s.payloads[name]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(p))
	copy(out, p)
	return out, nil
}

func (s *MemoryStore) Set(_ context.Context, name string, payload []byte) error {
	p := make([]byte, len(payload))
	copy(p, payload)
	s.payloads[name] = p
	return nil
}
