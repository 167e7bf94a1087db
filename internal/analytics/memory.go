package analytics

import (
	"context"
	"sort"
	"sync"
	"time"
)

type memoryRepository struct {
	mu     sync.RWMutex
	events []*Event
}

func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (m *memoryRepository) Insert(_ context.Context, event *Event) (*Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cloned := *event
	m.events = append(m.events, &cloned)
	copied := cloned
	return &copied, nil
}

func (m *memoryRepository) ListSince(_ context.Context, since time.Time) ([]*Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]*Event, 0, len(m.events))
	for _, event := range m.events {
		if event.Timestamp.Before(since) {
			continue
		}
		cloned := *event
		records = append(records, &cloned)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp.Before(records[j].Timestamp)
	})
	return records, nil
}

func (m *memoryRepository) HasPageview(_ context.Context, sessionID string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, event := range m.events {
		if event.SessionID == sessionID && event.EventType == EventPageview {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryRepository) Clear(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := len(m.events)
	m.events = nil
	return count, nil
}
