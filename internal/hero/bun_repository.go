package hero

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type BunButtonRepository struct {
	repo repository.Repository[*Button]
}

func NewBunButtonRepository(db *bun.DB) *BunButtonRepository {
	return &BunButtonRepository{repo: NewButtonRepository(db)}
}

func (r *BunButtonRepository) Create(ctx context.Context, button *Button) (*Button, error) {
	record, err := r.repo.Create(ctx, button)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *BunButtonRepository) GetByID(ctx context.Context, id uuid.UUID) (*Button, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "hero_button", id.String())
	}
	return record, nil
}

func (r *BunButtonRepository) List(ctx context.Context) ([]*Button, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.position ASC, ?TableAlias.created_at ASC")
		}),
	)
	return records, err
}

func (r *BunButtonRepository) ListActive(ctx context.Context) ([]*Button, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.is_active = ?", true).
				OrderExpr("?TableAlias.position ASC, ?TableAlias.created_at ASC")
		}),
	)
	return records, err
}

func (r *BunButtonRepository) Update(ctx context.Context, button *Button) (*Button, error) {
	record, err := r.repo.Update(ctx, button)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *BunButtonRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.repo.Delete(ctx, &Button{ID: id})
}

func (r *BunButtonRepository) BulkUpdatePositions(ctx context.Context, buttons []*Button) error {
	if len(buttons) == 0 {
		return nil
	}
	_, err := r.repo.UpdateMany(ctx, buttons,
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
