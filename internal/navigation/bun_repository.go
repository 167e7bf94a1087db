package navigation

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

// BunItemRepository implements Repository with optional caching. Navigation
// is read on every public page load, so the cached variant is the one the
// server wires in production.
type BunItemRepository struct {
	repo         repository.Repository[*Item]
	cacheService cache.CacheService
	cachePrefix  string
}

const itemNamespace = "navigation_item"

// NewBunItemRepository creates a navigation repository without caching.
func NewBunItemRepository(db *bun.DB) *BunItemRepository {
	return NewBunItemRepositoryWithCache(db, nil, nil)
}

// NewBunItemRepositoryWithCache creates a navigation repository with caching services.
func NewBunItemRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunItemRepository {
	base := NewItemRepository(db)
	var svc cache.CacheService
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
		svc = cacheService
	}
	prefix := ""
	if svc != nil {
		prefix = itemNamespace + cache.KeySeparator
	}
	return &BunItemRepository{repo: base, cacheService: svc, cachePrefix: prefix}
}

func (r *BunItemRepository) Create(ctx context.Context, item *Item) (*Item, error) {
	record, err := r.repo.Create(ctx, item)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *BunItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*Item, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "navigation_item", id.String())
	}
	return record, nil
}

func (r *BunItemRepository) GetByKey(ctx context.Context, key string) (*Item, error) {
	record, err := r.repo.GetByIdentifier(ctx, key)
	if err != nil {
		return nil, mapRepositoryError(err, "navigation_item", key)
	}
	return record, nil
}

func (r *BunItemRepository) List(ctx context.Context) ([]*Item, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.position ASC, ?TableAlias.created_at ASC")
		}),
	)
	return records, err
}

func (r *BunItemRepository) ListActive(ctx context.Context) ([]*Item, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.is_active = ?", true).
				OrderExpr("?TableAlias.position ASC, ?TableAlias.created_at ASC")
		}),
	)
	return records, err
}

func (r *BunItemRepository) Update(ctx context.Context, item *Item) (*Item, error) {
	record, err := r.repo.Update(ctx, item)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *BunItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.repo.Delete(ctx, &Item{ID: id})
}

func (r *BunItemRepository) BulkUpdatePositions(ctx context.Context, items []*Item) error {
	if len(items) == 0 {
		return nil
	}
	_, err := r.repo.UpdateMany(ctx, items,
		repository.UpdateColumns("position", "updated_at"),
	)
	return err
}

func (r *BunItemRepository) InvalidateCache(ctx context.Context) error {
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
