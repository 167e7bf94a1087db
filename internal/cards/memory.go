package cards

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/fomolabs/fomo-cms/internal/ordering"
)

type memoryRepository struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]*Card
}

// NewMemoryRepository constructs an in-memory repository for drawer cards.
func NewMemoryRepository() Repository {
	return &memoryRepository{byID: make(map[uuid.UUID]*Card)}
}

func (m *memoryRepository) Create(_ context.Context, card *Card) (*Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cloned := cloneCard(card)
	m.byID[cloned.ID] = cloned
	return cloneCard(cloned), nil
}

func (m *memoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Card, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.byID[id]
	if !ok {
		return nil, &NotFoundError{Resource: "drawer_card", Key: id.String()}
	}
	return cloneCard(record), nil
}

func (m *memoryRepository) List(_ context.Context) ([]*Card, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]*Card, 0, len(m.byID))
	for _, record := range m.byID {
		records = append(records, cloneCard(record))
	}
	ordering.Sort(records)
	return records, nil
}

func (m *memoryRepository) Update(_ context.Context, card *Card) (*Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[card.ID]; !ok {
		return nil, &NotFoundError{Resource: "drawer_card", Key: card.ID.String()}
	}
	cloned := cloneCard(card)
	m.byID[cloned.ID] = cloned
	return cloneCard(cloned), nil
}

func (m *memoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[id]; !ok {
		return &NotFoundError{Resource: "drawer_card", Key: id.String()}
	}
	delete(m.byID, id)
	return nil
}

func (m *memoryRepository) BulkUpdatePositions(_ context.Context, cards []*Card) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, card := range cards {
		existing, ok := m.byID[card.ID]
		if !ok {
			return &NotFoundError{Resource: "drawer_card", Key: card.ID.String()}
		}
		existing.Position = card.Position
		existing.UpdatedAt = card.UpdatedAt
	}
	return nil
}

func cloneCard(card *Card) *Card {
	if card == nil {
		return nil
	}
	cloned := *card
	return &cloned
}
