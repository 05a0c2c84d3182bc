package session

import (
	"sync"

	"github.com/nfrund/orderdesk/internal/domain"
)

// MemoryStore keeps the token for the lifetime of the process.
type MemoryStore struct {
	mu    sync.RWMutex
	token domain.Token
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() (domain.Token, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, !s.token.IsZero()
}

func (s *MemoryStore) Save(token domain.Token) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

func (s *MemoryStore) Clear() {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
}
