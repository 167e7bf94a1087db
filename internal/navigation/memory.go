package navigation

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/fomolabs/fomo-cms/internal/ordering"
)

type memoryRepository struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]*Item
}

func NewMemoryRepository() Repository {
	return &memoryRepository{byID: make(map[uuid.UUID]*Item)}
}

func (m *memoryRepository) Create(_ context.Context, item *Item) (*Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cloned := cloneItem(item)
	m.byID[cloned.ID] = cloned
	return cloneItem(cloned), nil
}

func (m *memoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.byID[id]
	if !ok {
		return nil, &NotFoundError{Resource: "navigation_item", Key: id.String()}
	}
	return cloneItem(record), nil
}

func (m *memoryRepository) GetByKey(_ context.Context, key string) (*Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, record := range m.byID {
		if record.Key == key {
			return cloneItem(record), nil
		}
	}
	return nil, &NotFoundError{Resource: "navigation_item", Key: key}
}

func (m *memoryRepository) List(_ context.Context) ([]*Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]*Item, 0, len(m.byID))
	for _, record := range m.byID {
		records = append(records, cloneItem(record))
	}
	ordering.Sort(records)
	return records, nil
}

func (m *memoryRepository) ListActive(_ context.Context) ([]*Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]*Item, 0, len(m.byID))
	for _, record := range m.byID {
		if record.IsActive {
			records = append(records, cloneItem(record))
		}
	}
	ordering.Sort(records)
	return records, nil
}

func (m *memoryRepository) Update(_ context.Context, item *Item) (*Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[item.ID]; !ok {
		return nil, &NotFoundError{Resource: "navigation_item", Key: item.ID.String()}
	}
	cloned := cloneItem(item)
	m.byID[cloned.ID] = cloned
	return cloneItem(cloned), nil
}

func (m *memoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[id]; !ok {
		return &NotFoundError{Resource: "navigation_item", Key: id.String()}
	}
	delete(m.byID, id)
	return nil
}

func (m *memoryRepository) BulkUpdatePositions(_ context.Context, items []*Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, item := range items {
		existing, ok := m.byID[item.ID]
		if !ok {
			return &NotFoundError{Resource: "navigation_item", Key: item.ID.String()}
		}
		existing.Position = item.Position
		existing.UpdatedAt = item.UpdatedAt
	}
	return nil
}

func cloneItem(item *Item) *Item {
	if item == nil {
		return nil
	}
	cloned := *item
	return &cloned
}
