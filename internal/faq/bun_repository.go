package faq

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type BunItemRepository struct {
	repo repository.Repository[*Item]
}

func NewBunItemRepository(db *bun.DB) *BunItemRepository {
	return &BunItemRepository{repo: NewItemRepository(db)}
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
		return nil, mapRepositoryError(err, "faq_item", id.String())
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

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Resource: resource, Key: key}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}
