package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/JakeFAU/ufc-athletes/internal/service"
)

// ProfileStore keeps scrape records in insertion order.
type ProfileStore struct {
	mu      sync.RWMutex
	records []service.ProfileRecord
}

// NewProfileStore creates an empty store.
func NewProfileStore() *ProfileStore {
	return &ProfileStore{}
}

// SaveProfile appends a record.
func (s *ProfileStore) SaveProfile(_ context.Context, record service.ProfileRecord) error {
	if record.ID == "" {
		return fmt.Errorf("record id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
	return nil
}

// Records returns every saved record.
func (s *ProfileStore) Records() []service.ProfileRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]service.ProfileRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Close is a no-op.
func (s *ProfileStore) Close() {}
