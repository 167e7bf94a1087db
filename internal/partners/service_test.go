package partners

import (
	"context"
	"errors"
	"testing"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/fomolabs/fomo-cms/internal/i18n"
	"github.com/fomolabs/fomo-cms/internal/ordering"
)

func seedPartners(t *testing.T, svc Service, category Category, names ...string) []*Partner {
	t.Helper()
	created := make([]*Partner, 0, len(names))
	for _, name := range names {
		partner, err := svc.CreatePartner(context.Background(), CreatePartnerInput{
			Name:     i18n.NewText(name, name),
			Category: category,
			ImageURL: "https://img.fomo.example/" + name + ".png",
		})
		if err != nil {
			t.Fatalf("seed partner %q: %v", name, err)
		}
		created = append(created, partner)
	}
	return created
}

func TestService_CreatePartner_OrdersPerCategory(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	media := seedPartners(t, svc, CategoryMedia, "m0", "m1")
	portfolio := seedPartners(t, svc, CategoryPortfolio, "p0")

	if media[1].Position != 1 {
		t.Fatalf("expected second media partner at position 1, got %d", media[1].Position)
	}
	if portfolio[0].Position != 0 {
		t.Fatalf("expected first portfolio partner at position 0, got %d", portfolio[0].Position)
	}
}

func TestService_CreatePartner_InvalidCategory(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	_, err := svc.CreatePartner(context.Background(), CreatePartnerInput{
		Name:     i18n.Text{EN: "Chainwire"},
		Category: Category("sponsors"),
		ImageURL: "https://img.fomo.example/chainwire.png",
	})
	var verrs ozzo.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation errors, got %v", err)
	}
	if _, ok := verrs["category"]; !ok {
		t.Fatalf("expected category issue, got %v", verrs)
	}
}

func TestService_UpdatePartner_CategoryChangeAppends(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	seedPartners(t, svc, CategoryMedia, "m0", "m1")
	moved := seedPartners(t, svc, CategoryPortfolio, "p0")[0]

	target := CategoryMedia
	updated, err := svc.UpdatePartner(context.Background(), UpdatePartnerInput{
		ID:       moved.ID,
		Category: &target,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Category != CategoryMedia {
		t.Fatalf("expected category media, got %q", updated.Category)
	}
	if updated.Position != 2 {
		t.Fatalf("expected appended position 2, got %d", updated.Position)
	}
}

func TestService_ReorderPartners_ScopedToCategory(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	media := seedPartners(t, svc, CategoryMedia, "m0", "m1")
	portfolio := seedPartners(t, svc, CategoryPortfolio, "p0", "p1")

	got, err := svc.ReorderPartners(context.Background(), CategoryMedia, []ordering.Update{
		{ID: media[1].ID, Order: 0},
		{ID: media[0].ID, Order: 1},
	})
	if err != nil {
		t.Fatalf("reorder: %v", err)
	}
	if got[0].ID != media[1].ID {
		t.Fatal("expected media grid reordered")
	}

	// Other category untouched.
	other, err := svc.ListPartnersByCategory(context.Background(), CategoryPortfolio)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if other[0].ID != portfolio[0].ID || other[0].Position != 0 {
		t.Fatal("expected portfolio grid unchanged")
	}
}

func TestService_ReorderPartners_RejectsCrossCategorySet(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	media := seedPartners(t, svc, CategoryMedia, "m0")
	portfolio := seedPartners(t, svc, CategoryPortfolio, "p0")

	_, err := svc.ReorderPartners(context.Background(), CategoryMedia, []ordering.Update{
		{ID: portfolio[0].ID, Order: 0},
	})
	if err == nil {
		t.Fatal("expected error for foreign id in category reorder")
	}
	_ = media
}

func TestService_MovePartner_UsesOwnCategory(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	seedPartners(t, svc, CategoryMedia, "m0")
	portfolio := seedPartners(t, svc, CategoryPortfolio, "p0", "p1")

	got, err := svc.MovePartner(context.Background(), portfolio[1].ID, ordering.DirectionUp)
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 portfolio partners, got %d", len(got))
	}
	if got[0].ID != portfolio[1].ID {
		t.Fatal("expected moved partner first in its category")
	}
}

func TestService_DeletePartner_LeavesOthersUntouched(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	media := seedPartners(t, svc, CategoryMedia, "m0", "m1", "m2")

	if err := svc.DeletePartner(context.Background(), media[0].ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	got, err := svc.ListPartnersByCategory(context.Background(), CategoryMedia)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 partners, got %d", len(got))
	}
	if got[0].Position != 1 || got[1].Position != 2 {
		t.Fatalf("expected stored gaps preserved, got [%d %d]", got[0].Position, got[1].Position)
	}
}
