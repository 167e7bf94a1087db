package evolution

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunLevelRepository implements LevelRepository on top of bun.
type BunLevelRepository struct {
	repo repository.Repository[*Level]
}

func NewBunLevelRepository(db *bun.DB) *BunLevelRepository {
	return &BunLevelRepository{repo: NewLevelRepository(db)}
}

func (r *BunLevelRepository) Create(ctx context.Context, level *Level) (*Level, error) {
	record, err := r.repo.Create(ctx, level)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *BunLevelRepository) GetByID(ctx context.Context, id uuid.UUID) (*Level, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "evolution_level", id.String())
	}
	return record, nil
}

func (r *BunLevelRepository) List(ctx context.Context) ([]*Level, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.position ASC, ?TableAlias.created_at ASC")
		}),
	)
	return records, err
}

func (r *BunLevelRepository) Update(ctx context.Context, level *Level) (*Level, error) {
	record, err := r.repo.Update(ctx, level)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *BunLevelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.repo.Delete(ctx, &Level{ID: id})
}

func (r *BunLevelRepository) BulkUpdatePositions(ctx context.Context, levels []*Level) error {
	if len(levels) == 0 {
		return nil
	}
	_, err := r.repo.UpdateMany(ctx, levels,
		repository.UpdateColumns("position", "updated_at"),
	)
	return err
}

// BunBadgeRepository implements BadgeRepository on top of bun.
type BunBadgeRepository struct {
	repo repository.Repository[*Badge]
}

func NewBunBadgeRepository(db *bun.DB) *BunBadgeRepository {
	return &BunBadgeRepository{repo: NewBadgeRepository(db)}
}

func (r *BunBadgeRepository) Create(ctx context.Context, badge *Badge) (*Badge, error) {
	record, err := r.repo.Create(ctx, badge)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *BunBadgeRepository) GetByID(ctx context.Context, id uuid.UUID) (*Badge, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "evolution_badge", id.String())
	}
	return record, nil
}

func (r *BunBadgeRepository) List(ctx context.Context) ([]*Badge, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.position ASC, ?TableAlias.created_at ASC")
		}),
	)
	return records, err
}

func (r *BunBadgeRepository) Update(ctx context.Context, badge *Badge) (*Badge, error) {
	record, err := r.repo.Update(ctx, badge)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *BunBadgeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.repo.Delete(ctx, &Badge{ID: id})
}

func (r *BunBadgeRepository) BulkUpdatePositions(ctx context.Context, badges []*Badge) error {
	if len(badges) == 0 {
		return nil
	}
	_, err := r.repo.UpdateMany(ctx, badges,
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
