package cards

import (
	"context"
	"fmt"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository exposes persistence operations for drawer cards.
type Repository interface {
	Create(ctx context.Context, card *Card) (*Card, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Card, error)
	List(ctx context.Context) ([]*Card, error)
	Update(ctx context.Context, card *Card) (*Card, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// BulkUpdatePositions persists position updates for multiple cards atomically.
	BulkUpdatePositions(ctx context.Context, cards []*Card) error
}

// NotFoundError is returned when a card cannot be located.
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

// NewCardRepository creates a repository for Card entities.
func NewCardRepository(db *bun.DB) repository.Repository[*Card] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Card]{
		NewRecord: func() *Card { return &Card{} },
		GetID: func(c *Card) uuid.UUID {
			return c.ID
		},
		SetID: func(c *Card, id uuid.UUID) {
			c.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(c *Card) string {
			return c.ID.String()
		},
	})
}
