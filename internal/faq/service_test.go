package faq

import (
	"context"
	"errors"
	"testing"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/fomolabs/fomo-cms/internal/ordering"
)

func seedItems(t *testing.T, svc Service, questions ...string) []*Item {
	t.Helper()
	created := make([]*Item, 0, len(questions))
	for _, q := range questions {
		item, err := svc.CreateItem(context.Background(), CreateItemInput{
			Question: q,
			Answer:   "answer for " + q,
		})
		if err != nil {
			t.Fatalf("seed item %q: %v", q, err)
		}
		created = append(created, item)
	}
	return created
}

func TestService_CreateItem_Validates(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	_, err := svc.CreateItem(context.Background(), CreateItemInput{Question: "What is FOMO Score?"})
	var verrs ozzo.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation errors, got %v", err)
	}
	if _, ok := verrs["answer"]; !ok {
		t.Fatalf("expected answer issue, got %v", verrs)
	}
}

func TestService_ReorderItems_DensePermutation(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	created := seedItems(t, svc, "one", "two", "three")

	got, err := svc.ReorderItems(context.Background(), []ordering.Update{
		{ID: created[1].ID, Order: 0},
		{ID: created[2].ID, Order: 1},
		{ID: created[0].ID, Order: 2},
	})
	if err != nil {
		t.Fatalf("reorder: %v", err)
	}
	for i, item := range got {
		if item.Position != i {
			t.Fatalf("index %d: expected position %d, got %d", i, i, item.Position)
		}
	}
	if got[0].ID != created[1].ID {
		t.Fatal("unexpected first item after reorder")
	}
}

func TestService_MoveItem_Boundary(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	created := seedItems(t, svc, "only")

	got, err := svc.MoveItem(context.Background(), created[0].ID, ordering.DirectionDown)
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if got[0].Position != 0 {
		t.Fatal("expected single item untouched")
	}
}

func TestService_DeleteItem_Unknown(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	seedItems(t, svc, "kept")

	err := svc.DeleteItem(context.Background(), uuid.New())
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}

	items, _ := svc.ListItems(context.Background())
	if len(items) != 1 {
		t.Fatalf("expected collection unchanged, got %d", len(items))
	}
}
