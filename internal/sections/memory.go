package sections

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type memoryStore struct {
	mu    sync.RWMutex
	byKey map[string]*Record
}

func NewMemoryStore() Store {
	return &memoryStore{byKey: make(map[string]*Record)}
}

func (m *memoryStore) Load(_ context.Context, key string) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.byKey[key]
	if !ok {
		return nil, &NotFoundError{Resource: "section", Key: key}
	}
	return cloneRecord(record), nil
}

func (m *memoryStore) Save(_ context.Context, record *Record) (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cloned := cloneRecord(record)
	if existing, ok := m.byKey[cloned.Key]; ok {
		cloned.ID = existing.ID
	} else if cloned.ID == uuid.Nil {
		cloned.ID = uuid.New()
	}
	m.byKey[cloned.Key] = cloned
	return cloneRecord(cloned), nil
}

func cloneRecord(record *Record) *Record {
	if record == nil {
		return nil
	}
	cloned := *record
	cloned.Payload = append([]byte(nil), record.Payload...)
	return &cloned
}
