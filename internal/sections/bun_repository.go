package sections

import (
	"context"
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type BunStore struct {
	repo repository.Repository[*Record]
}

func NewBunStore(db *bun.DB) *BunStore {
	return &BunStore{repo: NewRecordRepository(db)}
}

func (s *BunStore) Load(ctx context.Context, key string) (*Record, error) {
	record, err := s.repo.GetByIdentifier(ctx, key)
	if err != nil {
		return nil, mapRepositoryError(err, "section", key)
	}
	return record, nil
}

// Save upserts a section document under its key.
func (s *BunStore) Save(ctx context.Context, record *Record) (*Record, error) {
	existing, err := s.Load(ctx, record.Key)
	if err != nil {
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		if record.ID == uuid.Nil {
			record.ID = uuid.New()
		}
		return s.repo.Create(ctx, record)
	}
	record.ID = existing.ID
	return s.repo.Update(ctx, record)
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
