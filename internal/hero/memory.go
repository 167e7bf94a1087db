package hero

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/fomolabs/fomo-cms/internal/ordering"
)

type memoryRepository struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]*Button
}

func NewMemoryRepository() Repository {
	return &memoryRepository{byID: make(map[uuid.UUID]*Button)}
}

func (m *memoryRepository) Create(_ context.Context, button *Button) (*Button, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cloned := cloneButton(button)
	m.byID[cloned.ID] = cloned
	return cloneButton(cloned), nil
}

func (m *memoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Button, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.byID[id]
	if !ok {
		return nil, &NotFoundError{Resource: "hero_button", Key: id.String()}
	}
	return cloneButton(record), nil
}

func (m *memoryRepository) List(_ context.Context) ([]*Button, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]*Button, 0, len(m.byID))
	for _, record := range m.byID {
		records = append(records, cloneButton(record))
	}
	ordering.Sort(records)
	return records, nil
}

func (m *memoryRepository) ListActive(ctx context.Context) ([]*Button, error) {
	records, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := records[:0]
	for _, record := range records {
		if record.IsActive {
			filtered = append(filtered, record)
		}
	}
	return filtered, nil
}

func (m *memoryRepository) Update(_ context.Context, button *Button) (*Button, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[button.ID]; !ok {
		return nil, &NotFoundError{Resource: "hero_button", Key: button.ID.String()}
	}
	cloned := cloneButton(button)
	m.byID[cloned.ID] = cloned
	return cloneButton(cloned), nil
}

func (m *memoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[id]; !ok {
		return &NotFoundError{Resource: "hero_button", Key: id.String()}
	}
	delete(m.byID, id)
	return nil
}

func (m *memoryRepository) BulkUpdatePositions(_ context.Context, buttons []*Button) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, button := range buttons {
		existing, ok := m.byID[button.ID]
		if !ok {
			return &NotFoundError{Resource: "hero_button", Key: button.ID.String()}
		}
		existing.Position = button.Position
		existing.UpdatedAt = button.UpdatedAt
	}
	return nil
}

func cloneButton(button *Button) *Button {
	if button == nil {
		return nil
	}
	cloned := *button
	return &cloned
}
