package analytics

import (
	"context"
	"time"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository persists analytics events. Events are append-only: there is no
// update path, only bulk deletion via Clear.
type Repository interface {
	Insert(ctx context.Context, event *Event) (*Event, error)
	ListSince(ctx context.Context, since time.Time) ([]*Event, error)
	HasPageview(ctx context.Context, sessionID string) (bool, error)
	Clear(ctx context.Context) (int, error)
}

func NewEventRepository(db *bun.DB) repository.Repository[*Event] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Event]{
		NewRecord: func() *Event { return &Event{} },
		GetID: func(e *Event) uuid.UUID {
			return e.ID
		},
		SetID: func(e *Event, id uuid.UUID) {
			e.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(e *Event) string {
			return e.ID.String()
		},
	})
}
