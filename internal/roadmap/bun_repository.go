package roadmap

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type BunTaskRepository struct {
	repo repository.Repository[*Task]
}

func NewBunTaskRepository(db *bun.DB) *BunTaskRepository {
	return &BunTaskRepository{repo: NewTaskRepository(db)}
}

func (r *BunTaskRepository) Create(ctx context.Context, task *Task) (*Task, error) {
	record, err := r.repo.Create(ctx, task)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *BunTaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*Task, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "roadmap_task", id.String())
	}
	return record, nil
}

func (r *BunTaskRepository) List(ctx context.Context) ([]*Task, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.position ASC, ?TableAlias.created_at ASC")
		}),
	)
	return records, err
}

func (r *BunTaskRepository) ListByCategory(ctx context.Context, category string) ([]*Task, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.category = ?", category).
				OrderExpr("?TableAlias.position ASC, ?TableAlias.created_at ASC")
		}),
	)
	return records, err
}

func (r *BunTaskRepository) Update(ctx context.Context, task *Task) (*Task, error) {
	record, err := r.repo.Update(ctx, task)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *BunTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.repo.Delete(ctx, &Task{ID: id})
}

func (r *BunTaskRepository) BulkUpdatePositions(ctx context.Context, tasks []*Task) error {
	if len(tasks) == 0 {
		return nil
	}
	_, err := r.repo.UpdateMany(ctx, tasks,
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
