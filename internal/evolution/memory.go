package evolution

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/fomolabs/fomo-cms/internal/ordering"
)

type memoryLevelRepository struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]*Level
}

// NewMemoryLevelRepository constructs an in-memory repository for levels.
func NewMemoryLevelRepository() LevelRepository {
	return &memoryLevelRepository{byID: make(map[uuid.UUID]*Level)}
}

func (m *memoryLevelRepository) Create(_ context.Context, level *Level) (*Level, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cloned := cloneLevel(level)
	m.byID[cloned.ID] = cloned
	return cloneLevel(cloned), nil
}

func (m *memoryLevelRepository) GetByID(_ context.Context, id uuid.UUID) (*Level, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.byID[id]
	if !ok {
		return nil, &NotFoundError{Resource: "evolution_level", Key: id.String()}
	}
	return cloneLevel(record), nil
}

func (m *memoryLevelRepository) List(_ context.Context) ([]*Level, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]*Level, 0, len(m.byID))
	for _, record := range m.byID {
		records = append(records, cloneLevel(record))
	}
	ordering.Sort(records)
	return records, nil
}

func (m *memoryLevelRepository) Update(_ context.Context, level *Level) (*Level, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[level.ID]; !ok {
		return nil, &NotFoundError{Resource: "evolution_level", Key: level.ID.String()}
	}
	cloned := cloneLevel(level)
	m.byID[cloned.ID] = cloned
	return cloneLevel(cloned), nil
}

func (m *memoryLevelRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[id]; !ok {
		return &NotFoundError{Resource: "evolution_level", Key: id.String()}
	}
	delete(m.byID, id)
	return nil
}

func (m *memoryLevelRepository) BulkUpdatePositions(_ context.Context, levels []*Level) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, level := range levels {
		existing, ok := m.byID[level.ID]
		if !ok {
			return &NotFoundError{Resource: "evolution_level", Key: level.ID.String()}
		}
		existing.Position = level.Position
		existing.UpdatedAt = level.UpdatedAt
	}
	return nil
}

func cloneLevel(level *Level) *Level {
	if level == nil {
		return nil
	}
	cloned := *level
	return &cloned
}

type memoryBadgeRepository struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]*Badge
}

// NewMemoryBadgeRepository constructs an in-memory repository for badges.
func NewMemoryBadgeRepository() BadgeRepository {
	return &memoryBadgeRepository{byID: make(map[uuid.UUID]*Badge)}
}

func (m *memoryBadgeRepository) Create(_ context.Context, badge *Badge) (*Badge, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cloned := cloneBadge(badge)
	m.byID[cloned.ID] = cloned
	return cloneBadge(cloned), nil
}

func (m *memoryBadgeRepository) GetByID(_ context.Context, id uuid.UUID) (*Badge, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.byID[id]
	if !ok {
		return nil, &NotFoundError{Resource: "evolution_badge", Key: id.String()}
	}
	return cloneBadge(record), nil
}

func (m *memoryBadgeRepository) List(_ context.Context) ([]*Badge, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]*Badge, 0, len(m.byID))
	for _, record := range m.byID {
		records = append(records, cloneBadge(record))
	}
	ordering.Sort(records)
	return records, nil
}

func (m *memoryBadgeRepository) Update(_ context.Context, badge *Badge) (*Badge, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[badge.ID]; !ok {
		return nil, &NotFoundError{Resource: "evolution_badge", Key: badge.ID.String()}
	}
	cloned := cloneBadge(badge)
	m.byID[cloned.ID] = cloned
	return cloneBadge(cloned), nil
}

func (m *memoryBadgeRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[id]; !ok {
		return &NotFoundError{Resource: "evolution_badge", Key: id.String()}
	}
	delete(m.byID, id)
	return nil
}

func (m *memoryBadgeRepository) BulkUpdatePositions(_ context.Context, badges []*Badge) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, badge := range badges {
		existing, ok := m.byID[badge.ID]
		if !ok {
			return &NotFoundError{Resource: "evolution_badge", Key: badge.ID.String()}
		}
		existing.Position = badge.Position
		existing.UpdatedAt = badge.UpdatedAt
	}
	return nil
}

func cloneBadge(badge *Badge) *Badge {
	if badge == nil {
		return nil
	}
	cloned := *badge
	return &cloned
}
