// Package binding remembers which messages hold the lists of every
// DM channel the interface was shown in.
package binding

import (
	"context"
	"sync"

	"blight/internal/lists"
)

// MemoryStore keeps the bindings for the lifetime of the process.
// Messages created before a restart are not found again
type MemoryStore struct {
	mu       sync.RWMutex
	bindings map[string]map[lists.Kind]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{bindings: map[string]map[lists.Kind]string{}}
}

func (s *MemoryStore) Get(ctx context.Context, channelID string, kind lists.Kind) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	messageID, ok := s.bindings[channelID][kind]
	return messageID, ok, nil
}

func (s *MemoryStore) Set(ctx context.Context, channelID string, kind lists.Kind, messageID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bindings[channelID]; !ok {
		s.bindings[channelID] = map[lists.Kind]string{}
	}
	s.bindings[channelID][kind] = messageID
	return nil
}
