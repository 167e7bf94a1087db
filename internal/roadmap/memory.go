package roadmap

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/fomolabs/fomo-cms/internal/ordering"
)

type memoryRepository struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]*Task
}

func NewMemoryRepository() Repository {
	return &memoryRepository{byID: make(map[uuid.UUID]*Task)}
}

func (m *memoryRepository) Create(_ context.Context, task *Task) (*Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cloned := cloneTask(task)
	m.byID[cloned.ID] = cloned
	return cloneTask(cloned), nil
}

func (m *memoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.byID[id]
	if !ok {
		return nil, &NotFoundError{Resource: "roadmap_task", Key: id.String()}
	}
	return cloneTask(record), nil
}

func (m *memoryRepository) List(_ context.Context) ([]*Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]*Task, 0, len(m.byID))
	for _, record := range m.byID {
		records = append(records, cloneTask(record))
	}
	ordering.Sort(records)
	return records, nil
}

func (m *memoryRepository) ListByCategory(ctx context.Context, category string) ([]*Task, error) {
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

func (m *memoryRepository) Update(_ context.Context, task *Task) (*Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[task.ID]; !ok {
		return nil, &NotFoundError{Resource: "roadmap_task", Key: task.ID.String()}
	}
	cloned := cloneTask(task)
	m.byID[cloned.ID] = cloned
	return cloneTask(cloned), nil
}

func (m *memoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[id]; !ok {
		return &NotFoundError{Resource: "roadmap_task", Key: id.String()}
	}
	delete(m.byID, id)
	return nil
}

func (m *memoryRepository) BulkUpdatePositions(_ context.Context, tasks []*Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, task := range tasks {
		existing, ok := m.byID[task.ID]
		if !ok {
			return &NotFoundError{Resource: "roadmap_task", Key: task.ID.String()}
		}
		existing.Position = task.Position
		existing.UpdatedAt = task.UpdatedAt
	}
	return nil
}

func cloneTask(task *Task) *Task {
	if task == nil {
		return nil
	}
	cloned := *task
	return &cloned
}
