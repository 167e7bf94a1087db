package cards

import (
	"context"
	"errors"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/fomolabs/fomo-cms/internal/i18n"
	"github.com/fomolabs/fomo-cms/internal/ordering"
)

func newTestService(t *testing.T) (Service, Repository) {
	t.Helper()
	repo := NewMemoryRepository()
	svc := NewService(repo, WithClock(func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	}))
	return svc, repo
}

func seedCards(t *testing.T, svc Service, titles ...string) []*Card {
	t.Helper()
	created := make([]*Card, 0, len(titles))
	for _, title := range titles {
		card, err := svc.CreateCard(context.Background(), CreateCardInput{
			Title:    i18n.NewText(title, title),
			Link:     "https://fomo.example/" + title,
			ImageURL: "https://img.fomo.example/" + title + ".png",
		})
		if err != nil {
			t.Fatalf("seed card %q: %v", title, err)
		}
		created = append(created, card)
	}
	return created
}

func TestService_CreateCard_AppendsAtEnd(t *testing.T) {
	svc, _ := newTestService(t)
	created := seedCards(t, svc, "stake", "swap", "bridge")

	for i, card := range created {
		if card.Position != i {
			t.Fatalf("card %d: expected position %d, got %d", i, i, card.Position)
		}
	}
}

func TestService_CreateCard_MirrorsSingleLanguage(t *testing.T) {
	svc, _ := newTestService(t)

	card, err := svc.CreateCard(context.Background(), CreateCardInput{
		Title:    i18n.Text{RU: "Стейкинг"},
		Link:     "https://fomo.example/stake",
		ImageURL: "https://img.fomo.example/stake.png",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if card.Title.EN != "Стейкинг" {
		t.Fatalf("expected EN mirrored from RU, got %q", card.Title.EN)
	}
}

func TestService_CreateCard_ValidatesBeforePersisting(t *testing.T) {
	svc, repo := newTestService(t)

	_, err := svc.CreateCard(context.Background(), CreateCardInput{
		Title: i18n.NewText("Stake", "Стейкинг"),
	})
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation errors, got %v", err)
	}
	if _, ok := verrs["link"]; !ok {
		t.Fatalf("expected link issue, got %v", verrs)
	}
	if _, ok := verrs["image_url"]; !ok {
		t.Fatalf("expected image_url issue, got %v", verrs)
	}

	records, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no cards persisted, got %d", len(records))
	}
}

func TestService_ReorderCards_NormalizesPositions(t *testing.T) {
	svc, _ := newTestService(t)
	created := seedCards(t, svc, "stake", "swap", "bridge")

	got, err := svc.ReorderCards(context.Background(), []ordering.Update{
		{ID: created[2].ID, Order: 10},
		{ID: created[0].ID, Order: 40},
		{ID: created[1].ID, Order: 25},
	})
	if err != nil {
		t.Fatalf("reorder: %v", err)
	}

	want := []uuid.UUID{created[2].ID, created[1].ID, created[0].ID}
	for i, card := range got {
		if card.Position != i {
			t.Fatalf("index %d: expected position %d, got %d", i, i, card.Position)
		}
		if card.ID != want[i] {
			t.Fatalf("index %d: unexpected card order", i)
		}
	}
}

func TestService_ReorderCards_RejectsPartialSet(t *testing.T) {
	svc, _ := newTestService(t)
	created := seedCards(t, svc, "stake", "swap")

	_, err := svc.ReorderCards(context.Background(), []ordering.Update{
		{ID: created[0].ID, Order: 1},
	})
	if err == nil {
		t.Fatal("expected error for partial reorder submission")
	}
}

func TestService_MoveCard_BoundaryIsNoOp(t *testing.T) {
	svc, _ := newTestService(t)
	created := seedCards(t, svc, "stake", "swap")

	got, err := svc.MoveCard(context.Background(), created[0].ID, ordering.DirectionUp)
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if got[0].ID != created[0].ID || got[1].ID != created[1].ID {
		t.Fatal("expected order unchanged at boundary")
	}
}

func TestService_MoveCard_SwapsNeighbours(t *testing.T) {
	svc, _ := newTestService(t)
	created := seedCards(t, svc, "stake", "swap", "bridge")

	got, err := svc.MoveCard(context.Background(), created[2].ID, ordering.DirectionUp)
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	want := []uuid.UUID{created[0].ID, created[2].ID, created[1].ID}
	for i := range want {
		if got[i].ID != want[i] {
			t.Fatalf("index %d: unexpected order after move", i)
		}
	}
}

func TestService_DeleteCard_LeavesGapUntilReorder(t *testing.T) {
	svc, _ := newTestService(t)
	created := seedCards(t, svc, "stake", "swap", "bridge")

	if err := svc.DeleteCard(context.Background(), created[1].ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	got, err := svc.ListCards(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(got))
	}
	if got[0].Position != 0 || got[1].Position != 2 {
		t.Fatalf("expected positions [0 2] preserved, got [%d %d]", got[0].Position, got[1].Position)
	}

	reordered, err := svc.ReorderCards(context.Background(), []ordering.Update{
		{ID: got[0].ID, Order: got[0].Position},
		{ID: got[1].ID, Order: got[1].Position},
	})
	if err != nil {
		t.Fatalf("reorder: %v", err)
	}
	if reordered[0].Position != 0 || reordered[1].Position != 1 {
		t.Fatalf("expected reorder to normalize positions, got [%d %d]", reordered[0].Position, reordered[1].Position)
	}
}

func TestService_DeleteCard_UnknownID(t *testing.T) {
	svc, _ := newTestService(t)
	seedCards(t, svc, "stake")

	err := svc.DeleteCard(context.Background(), uuid.New())
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

type invalidatingRepo struct {
	Repository
	invalidations int
}

func (r *invalidatingRepo) InvalidateCache(context.Context) error {
	r.invalidations++
	return nil
}

func TestService_MutationsInvalidateCache(t *testing.T) {
	repo := &invalidatingRepo{Repository: NewMemoryRepository()}
	svc := NewService(repo)

	card, err := svc.CreateCard(context.Background(), CreateCardInput{
		Title:    i18n.NewText("Stake", "Стейкинг"),
		Link:     "https://fomo.example/stake",
		ImageURL: "https://img.fomo.example/stake.png",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if repo.invalidations != 1 {
		t.Fatalf("expected invalidation after create, got %d", repo.invalidations)
	}

	link := "https://fomo.example/staking"
	if _, err := svc.UpdateCard(context.Background(), UpdateCardInput{ID: card.ID, Link: &link}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if repo.invalidations != 2 {
		t.Fatalf("expected invalidation after update, got %d", repo.invalidations)
	}

	if err := svc.DeleteCard(context.Background(), card.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if repo.invalidations != 3 {
		t.Fatalf("expected invalidation after delete, got %d", repo.invalidations)
	}
}
