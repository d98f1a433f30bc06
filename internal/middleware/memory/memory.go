// Package memory is an in-memory implementation of cache storage.
package memory

import (
	"sync"
	"time"
)

type item struct {
	content  []byte
	deadline time.Time
}

// Storage ...
type Storage struct {
	mu    sync.Mutex
	items map[string]item
}

// NewStorage creates new instance of Storage.
func NewStorage() *Storage {
	return &Storage{
		items: make(map[string]item),
	}
}

// Get returns stored content or nil when the key is absent or expired.
func (s *Storage) Get(key string) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.items[key]
	if !ok {
		return nil
	}

	if time.Now().After(v.deadline) {
		delete(s.items, key)
		return nil
	}

	return v.content
}

// Set stores content for the given duration.
func (s *Storage) Set(key string, content []byte, duration time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k, v := range s.items {
		if time.Now().After(v.deadline) {
			delete(s.items, k)
		}
	}

	s.items[key] = item{
		content:  content,
		deadline: time.Now().Add(duration),
	}
}
