// Package memory keeps client slots in process memory. Data is lost on
// restart; it is the default store for local runs and tests.
package memory

import (
	"context"
	"sync"

	"edu-finder-backend/internal/domain"
)

type slotKey struct {
	clientID string
	slot     string
}

type slotStore struct {
	mu    sync.RWMutex
	slots map[slotKey][]byte
}

func NewSlotStore() domain.SlotStore {
	return &slotStore{slots: make(map[slotKey][]byte)}
}

func (s *slotStore) Get(ctx context.Context, clientID, slot string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.slots[slotKey{clientID, slot}]
	if !ok {
		return nil, domain.ErrSlotEmpty
	}
	return append([]byte(nil), value...), nil
}

func (s *slotStore) Put(ctx context.Context, clientID, slot string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.slots[slotKey{clientID, slot}] = append([]byte(nil), value...)
	return nil
}

func (s *slotStore) Delete(ctx context.Context, clientID, slot string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.slots, slotKey{clientID, slot})
	return nil
}

func (s *slotStore) Ping(ctx context.Context) error {
	return ctx.Err()
}
