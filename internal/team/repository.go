package team

import (
	"context"
	"fmt"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository exposes persistence operations for team members.
type Repository interface {
	Create(ctx context.Context, member *Member) (*Member, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Member, error)
	List(ctx context.Context) ([]*Member, error)
	ListByType(ctx context.Context, memberType MemberType) ([]*Member, error)
	Update(ctx context.Context, member *Member) (*Member, error)
	Delete(ctx context.Context, id uuid.UUID) error
	BulkUpdatePositions(ctx context.Context, members []*Member) error
}

// NotFoundError is returned when a team member cannot be located.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// NewMemberRepository creates a repository for Member entities.
func NewMemberRepository(db *bun.DB) repository.Repository[*Member] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Member]{
		NewRecord: func() *Member { return &Member{} },
		GetID: func(m *Member) uuid.UUID {
			return m.ID
		},
		SetID: func(m *Member, id uuid.UUID) {
			m.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(m *Member) string {
			return m.ID.String()
		},
	})
}
