package cards

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	cache "github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunCardRepository implements Repository with optional caching.
type BunCardRepository struct {
	repo         repository.Repository[*Card]
	cacheService cache.CacheService
	cachePrefix  string
}

const cardNamespace = "drawer_card"

// NewBunCardRepository creates a card repository without caching.
func NewBunCardRepository(db *bun.DB) *BunCardRepository {
	return NewBunCardRepositoryWithCache(db, nil, nil)
}

// NewBunCardRepositoryWithCache creates a card repository with caching services.
func NewBunCardRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunCardRepository {
	base := NewCardRepository(db)
	var svc cache.CacheService
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
		svc = cacheService
	}
	prefix := ""
	if svc != nil {
		prefix = cardNamespace + cache.KeySeparator
	}
	return &BunCardRepository{repo: base, cacheService: svc, cachePrefix: prefix}
}

func (r *BunCardRepository) Create(ctx context.Context, card *Card) (*Card, error) {
	record, err := r.repo.Create(ctx, card)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *BunCardRepository) GetByID(ctx context.Context, id uuid.UUID) (*Card, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "drawer_card", id.String())
	}
	return record, nil
}

func (r *BunCardRepository) List(ctx context.Context) ([]*Card, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.position ASC, ?TableAlias.created_at ASC")
		}),
	)
	return records, err
}

func (r *BunCardRepository) Update(ctx context.Context, card *Card) (*Card, error) {
	record, err := r.repo.Update(ctx, card)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *BunCardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.repo.Delete(ctx, &Card{ID: id})
}

func (r *BunCardRepository) BulkUpdatePositions(ctx context.Context, cards []*Card) error {
	if len(cards) == 0 {
		return nil
	}
	_, err := r.repo.UpdateMany(ctx, cards,
		repository.UpdateColumns("position", "updated_at"),
	)
	return err
}

func (r *BunCardRepository) InvalidateCache(ctx context.Context) error {
	if r.cacheService == nil || r.cachePrefix == "" {
		return nil
	}
	return r.cacheService.DeleteByPrefix(ctx, r.cachePrefix)
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Resource: resource, Key: key}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}
