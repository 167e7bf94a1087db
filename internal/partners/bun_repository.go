package partners

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

// BunPartnerRepository implements Repository with optional caching. The
// public grids read partners on every page load, so this is the hottest
// collection and the one that benefits most from the cache layer.
type BunPartnerRepository struct {
	repo         repository.Repository[*Partner]
	cacheService cache.CacheService
	cachePrefix  string
}

const partnerNamespace = "partner"

// NewBunPartnerRepository creates a partner repository without caching.
func NewBunPartnerRepository(db *bun.DB) *BunPartnerRepository {
	return NewBunPartnerRepositoryWithCache(db, nil, nil)
}

// NewBunPartnerRepositoryWithCache creates a partner repository with caching services.
func NewBunPartnerRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunPartnerRepository {
	base := NewPartnerRepository(db)
	var svc cache.CacheService
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
		svc = cacheService
	}
	prefix := ""
	if svc != nil {
		prefix = partnerNamespace + cache.KeySeparator
	}
	return &BunPartnerRepository{repo: base, cacheService: svc, cachePrefix: prefix}
}

func (r *BunPartnerRepository) Create(ctx context.Context, partner *Partner) (*Partner, error) {
	record, err := r.repo.Create(ctx, partner)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *BunPartnerRepository) GetByID(ctx context.Context, id uuid.UUID) (*Partner, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "partner", id.String())
	}
	return record, nil
}

func (r *BunPartnerRepository) List(ctx context.Context) ([]*Partner, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.category ASC").
				OrderExpr("?TableAlias.position ASC, ?TableAlias.created_at ASC")
		}),
	)
	return records, err
}

func (r *BunPartnerRepository) ListByCategory(ctx context.Context, category Category) ([]*Partner, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.category = ?", category).
				OrderExpr("?TableAlias.position ASC, ?TableAlias.created_at ASC")
		}),
	)
	return records, err
}

func (r *BunPartnerRepository) Update(ctx context.Context, partner *Partner) (*Partner, error) {
	record, err := r.repo.Update(ctx, partner)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *BunPartnerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.repo.Delete(ctx, &Partner{ID: id})
}

func (r *BunPartnerRepository) BulkUpdatePositions(ctx context.Context, partners []*Partner) error {
	if len(partners) == 0 {
		return nil
	}
	_, err := r.repo.UpdateMany(ctx, partners,
		repository.UpdateColumns("position", "updated_at"),
	)
	return err
}

func (r *BunPartnerRepository) InvalidateCache(ctx context.Context) error {
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
