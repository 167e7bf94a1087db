package partners

import (
	"context"
	"fmt"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository exposes persistence operations for partners.
type Repository interface {
	Create(ctx context.Context, partner *Partner) (*Partner, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Partner, error)
	List(ctx context.Context) ([]*Partner, error)
	ListByCategory(ctx context.Context, category Category) ([]*Partner, error)
	Update(ctx context.Context, partner *Partner) (*Partner, error)
	Delete(ctx context.Context, id uuid.UUID) error
	BulkUpdatePositions(ctx context.Context, partners []*Partner) error
}

// NotFoundError is returned when a partner cannot be located.
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

// NewPartnerRepository creates a repository for Partner entities.
func NewPartnerRepository(db *bun.DB) repository.Repository[*Partner] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Partner]{
		NewRecord: func() *Partner { return &Partner{} },
		GetID: func(p *Partner) uuid.UUID {
			return p.ID
		},
		SetID: func(p *Partner, id uuid.UUID) {
			p.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(p *Partner) string {
			return p.ID.String()
		},
	})
}
