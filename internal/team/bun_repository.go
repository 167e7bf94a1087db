package team

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunMemberRepository implements Repository on top of bun.
type BunMemberRepository struct {
	repo repository.Repository[*Member]
}

// NewBunMemberRepository creates a team member repository.
func NewBunMemberRepository(db *bun.DB) *BunMemberRepository {
	return &BunMemberRepository{repo: NewMemberRepository(db)}
}

func (r *BunMemberRepository) Create(ctx context.Context, member *Member) (*Member, error) {
	record, err := r.repo.Create(ctx, member)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *BunMemberRepository) GetByID(ctx context.Context, id uuid.UUID) (*Member, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "team_member", id.String())
	}
	return record, nil
}

func (r *BunMemberRepository) List(ctx context.Context) ([]*Member, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.position ASC, ?TableAlias.created_at ASC")
		}),
	)
	return records, err
}

func (r *BunMemberRepository) ListByType(ctx context.Context, memberType MemberType) ([]*Member, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.member_type = ?", memberType).
				OrderExpr("?TableAlias.position ASC, ?TableAlias.created_at ASC")
		}),
	)
	return records, err
}

func (r *BunMemberRepository) Update(ctx context.Context, member *Member) (*Member, error) {
	record, err := r.repo.Update(ctx, member)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *BunMemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.repo.Delete(ctx, &Member{ID: id})
}

func (r *BunMemberRepository) BulkUpdatePositions(ctx context.Context, members []*Member) error {
	if len(members) == 0 {
		return nil
	}
	_, err := r.repo.UpdateMany(ctx, members,
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
