package evolution

import (
	"context"
	"fmt"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// LevelRepository exposes persistence operations for evolution levels.
type LevelRepository interface {
	Create(ctx context.Context, level *Level) (*Level, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Level, error)
	List(ctx context.Context) ([]*Level, error)
	Update(ctx context.Context, level *Level) (*Level, error)
	Delete(ctx context.Context, id uuid.UUID) error
	BulkUpdatePositions(ctx context.Context, levels []*Level) error
}

// BadgeRepository exposes persistence operations for evolution badges.
type BadgeRepository interface {
	Create(ctx context.Context, badge *Badge) (*Badge, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Badge, error)
	List(ctx context.Context) ([]*Badge, error)
	Update(ctx context.Context, badge *Badge) (*Badge, error)
	Delete(ctx context.Context, id uuid.UUID) error
	BulkUpdatePositions(ctx context.Context, badges []*Badge) error
}

// NotFoundError is returned when a level or badge cannot be located.
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

// NewLevelRepository creates a repository for Level entities.
func NewLevelRepository(db *bun.DB) repository.Repository[*Level] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Level]{
		NewRecord: func() *Level { return &Level{} },
		GetID: func(l *Level) uuid.UUID {
			return l.ID
		},
		SetID: func(l *Level, id uuid.UUID) {
			l.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(l *Level) string {
			return l.ID.String()
		},
	})
}

// NewBadgeRepository creates a repository for Badge entities.
func NewBadgeRepository(db *bun.DB) repository.Repository[*Badge] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Badge]{
		NewRecord: func() *Badge { return &Badge{} },
		GetID: func(b *Badge) uuid.UUID {
			return b.ID
		},
		SetID: func(b *Badge, id uuid.UUID) {
			b.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(b *Badge) string {
			return b.ID.String()
		},
	})
}
