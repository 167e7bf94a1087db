package storage

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/fomolabs/fomo-cms/internal/evolution"
	"github.com/fomolabs/fomo-cms/internal/hero"
	"github.com/fomolabs/fomo-cms/internal/navigation"
	"github.com/fomolabs/fomo-cms/internal/partners"
)

func TestSeed_PopulatesEmptyCollections(t *testing.T) {
	repos := SeedRepositories{
		Navigation: navigation.NewMemoryRepository(),
		Hero:       hero.NewMemoryRepository(),
		Partners:   partners.NewMemoryRepository(),
		Levels:     evolution.NewMemoryLevelRepository(),
		Badges:     evolution.NewMemoryBadgeRepository(),
	}

	if err := Seed(context.Background(), repos); err != nil {
		t.Fatalf("seed: %v", err)
	}

	navItems, err := repos.Navigation.List(context.Background())
	if err != nil {
		t.Fatalf("list navigation: %v", err)
	}
	if len(navItems) != 6 {
		t.Fatalf("expected 6 navigation items got %d", len(navItems))
	}
	if navItems[0].Key != "about" {
		t.Fatalf("expected first nav item about got %q", navItems[0].Key)
	}

	buttons, err := repos.Hero.List(context.Background())
	if err != nil {
		t.Fatalf("list buttons: %v", err)
	}
	if len(buttons) != 2 {
		t.Fatalf("expected 2 hero buttons got %d", len(buttons))
	}

	levels, err := repos.Levels.List(context.Background())
	if err != nil {
		t.Fatalf("list levels: %v", err)
	}
	if len(levels) == 0 {
		t.Fatalf("expected seeded evolution levels")
	}

	media, err := repos.Partners.ListByCategory(context.Background(), partners.CategoryMedia)
	if err != nil {
		t.Fatalf("list media partners: %v", err)
	}
	if len(media) != 2 {
		t.Fatalf("expected 2 media partners got %d", len(media))
	}
	if media[0].Position != 0 {
		t.Fatalf("expected per-category positions to start at 0, got %d", media[0].Position)
	}
	if media[0].Name.RU == "" {
		t.Fatalf("expected mirrored russian name for seeded partner")
	}
}

func TestSeed_LeavesExistingRowsAlone(t *testing.T) {
	navRepo := navigation.NewMemoryRepository()
	custom := &navigation.Item{ID: uuid.New(), Key: "docs", Href: "#docs", IsActive: true}
	if _, err := navRepo.Create(context.Background(), custom); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := Seed(context.Background(), SeedRepositories{Navigation: navRepo}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	items, err := navRepo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].Key != "docs" {
		t.Fatalf("expected seeding to skip a non-empty collection, got %d items", len(items))
	}
}
