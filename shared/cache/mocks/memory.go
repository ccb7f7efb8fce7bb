package mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Memory is a RedisCache backed by a map. Values go through JSON like they do in
// Redis, so a read returns a copy and never aliases what was saved. Clear only
// understands trailing "*" patterns, which is all the services use.
type Memory struct {
	mu     sync.Mutex
	values map[string][]byte
	counts map[string]int64
}

func NewMemory() *Memory {
	return &Memory{
		values: map[string][]byte{},
		counts: map[string]int64{},
	}
}

func (m *Memory) Save(_ context.Context, key string, value any, _ int) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = raw

	return nil
}

func (m *Memory) Get(_ context.Context, key string, value any) error {
	m.mu.Lock()
	raw, ok := m.values[key]
	m.mu.Unlock()

	if !ok {
		return fmt.Errorf("failed to get cache value: %w", redis.Nil)
	}

	return json.Unmarshal(raw, value)
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)

	return nil
}

func (m *Memory) Clear(_ context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")

	m.mu.Lock()
	defer m.mu.Unlock()

	for key := range m.values {
		if strings.HasPrefix(key, prefix) {
			delete(m.values, key)
		}
	}

	return nil
}

func (m *Memory) Incr(_ context.Context, key string, _ int) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.counts[key]++

	return m.counts[key], nil
}

// Has reports whether key currently holds a value.
func (m *Memory) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.values[key]

	return ok
}
