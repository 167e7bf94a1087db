package analytics

import (
	"context"
	"fmt"
	"time"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/uptrace/bun"
)

type BunEventRepository struct {
	db   *bun.DB
	repo repository.Repository[*Event]
}

func NewBunEventRepository(db *bun.DB) *BunEventRepository {
	return &BunEventRepository{db: db, repo: NewEventRepository(db)}
}

func (r *BunEventRepository) Insert(ctx context.Context, event *Event) (*Event, error) {
	record, err := r.repo.Create(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("analytics event insert: %w", err)
	}
	return record, nil
}

func (r *BunEventRepository) ListSince(ctx context.Context, since time.Time) ([]*Event, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.timestamp >= ?", since).
				OrderExpr("?TableAlias.timestamp ASC")
		}),
	)
	return records, err
}

func (r *BunEventRepository) HasPageview(ctx context.Context, sessionID string) (bool, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.session_id = ?", sessionID).
				Where("?TableAlias.event_type = ?", EventPageview).
				Limit(1)
		}),
	)
	if err != nil {
		return false, err
	}
	return len(records) > 0, nil
}

// Clear wipes every stored event and reports how many rows went away.
func (r *BunEventRepository) Clear(ctx context.Context) (int, error) {
	res, err := r.db.NewDelete().
		Model((*Event)(nil)).
		Where("1 = 1").
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("analytics clear: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, nil
	}
	return int(affected), nil
}
