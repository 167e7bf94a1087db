package hero

import (
	"context"
	"fmt"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository exposes persistence operations for hero buttons.
type Repository interface {
	Create(ctx context.Context, button *Button) (*Button, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Button, error)
	List(ctx context.Context) ([]*Button, error)
	ListActive(ctx context.Context) ([]*Button, error)
	Update(ctx context.Context, button *Button) (*Button, error)
	Delete(ctx context.Context, id uuid.UUID) error
	BulkUpdatePositions(ctx context.Context, buttons []*Button) error
}

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

func NewButtonRepository(db *bun.DB) repository.Repository[*Button] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Button]{
		NewRecord: func() *Button { return &Button{} },
		GetID: func(b *Button) uuid.UUID {
			return b.ID
		},
		SetID: func(b *Button, id uuid.UUID) {
			b.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(b *Button) string {
			return b.ID.String()
		},
	})
}
