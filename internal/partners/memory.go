package partners

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/fomolabs/fomo-cms/internal/ordering"
)

type memoryRepository struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]*Partner
}

// NewMemoryRepository constructs an in-memory repository for partners.
func NewMemoryRepository() Repository {
	return &memoryRepository{byID: make(map[uuid.UUID]*Partner)}
}

func (m *memoryRepository) Create(_ context.Context, partner *Partner) (*Partner, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cloned := clonePartner(partner)
	m.byID[cloned.ID] = cloned
	return clonePartner(cloned), nil
}

func (m *memoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Partner, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.byID[id]
	if !ok {
		return nil, &NotFoundError{Resource: "partner", Key: id.String()}
	}
	return clonePartner(record), nil
}

func (m *memoryRepository) List(_ context.Context) ([]*Partner, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]*Partner, 0, len(m.byID))
	for _, record := range m.byID {
		records = append(records, clonePartner(record))
	}
	ordering.Sort(records)
	return records, nil
}

func (m *memoryRepository) ListByCategory(ctx context.Context, category Category) ([]*Partner, error) {
	records, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := records[:0]
	for _, record := range records {
		if record.Category == category {
			filtered = append(filtered, record)
		}
	}
	return filtered, nil
}

func (m *memoryRepository) Update(_ context.Context, partner *Partner) (*Partner, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[partner.ID]; !ok {
		return nil, &NotFoundError{Resource: "partner", Key: partner.ID.String()}
	}
	cloned := clonePartner(partner)
	m.byID[cloned.ID] = cloned
	return clonePartner(cloned), nil
}

func (m *memoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[id]; !ok {
		return &NotFoundError{Resource: "partner", Key: id.String()}
	}
	delete(m.byID, id)
	return nil
}

func (m *memoryRepository) BulkUpdatePositions(_ context.Context, partners []*Partner) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, partner := range partners {
		existing, ok := m.byID[partner.ID]
		if !ok {
			return &NotFoundError{Resource: "partner", Key: partner.ID.String()}
		}
		existing.Position = partner.Position
		existing.UpdatedAt = partner.UpdatedAt
	}
	return nil
}

func clonePartner(partner *Partner) *Partner {
	if partner == nil {
		return nil
	}
	cloned := *partner
	return &cloned
}
