package numbering

import (
	"context"
	"sync"

	"github.com/quoteline/backend/internal/domain/shared"
)

// memCounterStore is an in-memory CounterStore for tests. Increment is
// serialized by a mutex, matching the atomicity contract of the real store.
type memCounterStore struct {
	mu     sync.Mutex
	values map[string]int64
}

func newMemCounterStore() *memCounterStore {
	return &memCounterStore{values: make(map[string]int64)}
}

func (s *memCounterStore) Increment(_ context.Context, namespace string, year int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := CounterKey(namespace, year)
	s.values[key]++
	return s.values[key], nil
}

func (s *memCounterStore) Set(_ context.Context, namespace string, year int, value int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[CounterKey(namespace, year)] = value
	return nil
}

func (s *memCounterStore) Reset(ctx context.Context, namespace string, year int) error {
	return s.Set(ctx, namespace, year, 0)
}

func (s *memCounterStore) Peek(_ context.Context, namespace string, year int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[CounterKey(namespace, year)], nil
}

func (s *memCounterStore) DeleteNamespace(_ context.Context, namespace string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prefix := namespace + "_counter_"
	for key := range s.values {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(s.values, key)
		}
	}
	return nil
}

// memSettings is an in-memory SettingsStore for tests
type memSettings struct {
	mu     sync.Mutex
	values map[string]string
}

func newMemSettings() *memSettings {
	return &memSettings{values: make(map[string]string)}
}

func (s *memSettings) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.values[key]
	if !ok {
		return "", shared.ErrNotFound
	}
	return value, nil
}

func (s *memSettings) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *memSettings) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

func (s *memSettings) GetAll(_ context.Context) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out, nil
}
