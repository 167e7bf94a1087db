package team

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/fomolabs/fomo-cms/internal/ordering"
)

type memoryRepository struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]*Member
}

// NewMemoryRepository constructs an in-memory repository for team members.
func NewMemoryRepository() Repository {
	return &memoryRepository{byID: make(map[uuid.UUID]*Member)}
}

func (m *memoryRepository) Create(_ context.Context, member *Member) (*Member, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cloned := cloneMember(member)
	m.byID[cloned.ID] = cloned
	return cloneMember(cloned), nil
}

func (m *memoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Member, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.byID[id]
	if !ok {
		return nil, &NotFoundError{Resource: "team_member", Key: id.String()}
	}
	return cloneMember(record), nil
}

func (m *memoryRepository) List(_ context.Context) ([]*Member, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]*Member, 0, len(m.byID))
	for _, record := range m.byID {
		records = append(records, cloneMember(record))
	}
	ordering.Sort(records)
	return records, nil
}

func (m *memoryRepository) ListByType(ctx context.Context, memberType MemberType) ([]*Member, error) {
	records, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := records[:0]
	for _, record := range records {
		if record.MemberType == memberType {
			filtered = append(filtered, record)
		}
	}
	return filtered, nil
}

func (m *memoryRepository) Update(_ context.Context, member *Member) (*Member, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[member.ID]; !ok {
		return nil, &NotFoundError{Resource: "team_member", Key: member.ID.String()}
	}
	cloned := cloneMember(member)
	m.byID[cloned.ID] = cloned
	return cloneMember(cloned), nil
}

func (m *memoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[id]; !ok {
		return &NotFoundError{Resource: "team_member", Key: id.String()}
	}
	delete(m.byID, id)
	return nil
}

func (m *memoryRepository) BulkUpdatePositions(_ context.Context, members []*Member) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, member := range members {
		existing, ok := m.byID[member.ID]
		if !ok {
			return &NotFoundError{Resource: "team_member", Key: member.ID.String()}
		}
		existing.Position = member.Position
		existing.UpdatedAt = member.UpdatedAt
	}
	return nil
}

func cloneMember(member *Member) *Member {
	if member == nil {
		return nil
	}
	cloned := *member
	if member.SocialLinks != nil {
		cloned.SocialLinks = maps.Clone(member.SocialLinks)
	}
	cloned.DisplayedSocials = slices.Clone(member.DisplayedSocials)
	return &cloned
}
