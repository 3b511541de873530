// Package cart provides the in-memory session cart store.
package cart

import (
	"sync"

	"mpeshop/internal/domain/entity"
	"mpeshop/internal/domain/service"

	"github.com/google/uuid"
)

type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]entity.CartContents
}

// NewMemoryStore creates a session cart store backed by process memory.
// Carts do not survive a restart; an uncommitted cart is throwaway state.
func NewMemoryStore() service.CartStore {
	return &memoryStore{
		sessions: make(map[string]entity.CartContents),
	}
}

func (s *memoryStore) Add(sessionID string, productID uuid.UUID, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contents, ok := s.sessions[sessionID]
	if !ok {
		contents = make(entity.CartContents)
		s.sessions[sessionID] = contents
	}

	contents[productID] = entity.ClampCartQuantity(contents[productID] + qty)
}

func (s *memoryStore) Remove(sessionID string, productID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contents, ok := s.sessions[sessionID]
	if !ok {
		return
	}

	delete(contents, productID)
	if len(contents) == 0 {
		delete(s.sessions, sessionID)
	}
}

func (s *memoryStore) Get(sessionID string) entity.CartContents {
	s.mu.RLock()
	defer s.mu.RUnlock()

	contents, ok := s.sessions[sessionID]
	if !ok {
		return entity.CartContents{}
	}

	out := make(entity.CartContents, len(contents))
	for id, qty := range contents {
		out[id] = qty
	}

	return out
}

func (s *memoryStore) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
}
