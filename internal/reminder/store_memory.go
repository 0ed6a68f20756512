package reminder

import (
	"context"
	"sync"
	"time"

	id "github.com/deltacloudassociates/optmark-crm-hub/pkg/domain"
)

type InMemoryStore struct {
	mu      sync.RWMutex
	records map[id.DocumentID][]Record
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{records: make(map[id.DocumentID][]Record)}
}

func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make(map[id.DocumentID][]Record)
}

func (s *InMemoryStore) Append(_ context.Context, record Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.DocumentID] = append(s.records[record.DocumentID], record)
	return nil
}

func (s *InMemoryStore) ListByDocument(_ context.Context, documentID id.DocumentID) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Record{}, s.records[documentID]...), nil
}

func (s *InMemoryStore) LastSentAt(_ context.Context, documentID id.DocumentID) (*time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var last *time.Time
	for _, record := range s.records[documentID] {
		if record.Outcome != OutcomeSent {
			continue
		}
		if last == nil || record.SentAt.After(*last) {
			sentAt := record.SentAt
			last = &sentAt
		}
	}
	return last, nil
}
