package sections

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/fomolabs/fomo-cms/internal/i18n"
	"github.com/fomolabs/fomo-cms/internal/ordering"
)

func TestService_GetHero_PersistsDefaultsOnFirstRead(t *testing.T) {
	store := NewMemoryStore()
	svc := NewService(store)

	settings, err := svc.GetHero(context.Background())
	if err != nil {
		t.Fatalf("get hero: %v", err)
	}
	if settings.Badge != "Now in Beta v1.1" {
		t.Fatalf("unexpected default badge %q", settings.Badge)
	}
	if _, err := store.Load(context.Background(), KeyHero); err != nil {
		t.Fatalf("expected defaults persisted, got %v", err)
	}
}

func TestService_UpdateHero_MergesPatch(t *testing.T) {
	svc := NewService(NewMemoryStore())

	badge := "Now in Beta v2.0"
	updated, err := svc.UpdateHero(context.Background(), HeroPatch{Badge: &badge})
	if err != nil {
		t.Fatalf("update hero: %v", err)
	}
	if updated.Badge != badge {
		t.Fatalf("badge not applied: %q", updated.Badge)
	}
	if updated.TitleLine1 != "The Future of" {
		t.Fatalf("untouched field lost: %q", updated.TitleLine1)
	}
	if updated.NFTSettings.TotalSupply != 666 {
		t.Fatalf("nested default lost: %d", updated.NFTSettings.TotalSupply)
	}

	reread, err := svc.GetHero(context.Background())
	if err != nil {
		t.Fatalf("reread: %v", err)
	}
	if reread.Badge != badge {
		t.Fatalf("update not persisted: %q", reread.Badge)
	}
}

func TestService_UpdateCommunity_MirrorsText(t *testing.T) {
	svc := NewService(NewMemoryStore())

	title := i18n.Text{EN: "Join us"}
	updated, err := svc.UpdateCommunity(context.Background(), CommunityPatch{Title: &title})
	if err != nil {
		t.Fatalf("update community: %v", err)
	}
	if updated.Title.RU != "Join us" {
		t.Fatalf("expected mirrored RU title, got %q", updated.Title.RU)
	}
}

func TestService_UpdatePlatform_KeepsDefaultTrend(t *testing.T) {
	svc := NewService(NewMemoryStore())

	stat := PlatformStat{Value: "50,000", Label: i18n.NewText("Community Members", ""), Change: "+15%"}
	updated, err := svc.UpdatePlatform(context.Background(), PlatformPatch{Community: &stat})
	if err != nil {
		t.Fatalf("update platform: %v", err)
	}
	if updated.Community.Value != "50,000" {
		t.Fatalf("stat not applied: %q", updated.Community.Value)
	}
	if len(updated.Community.Trend) == 0 {
		t.Fatal("expected trend backfilled from defaults")
	}
	if len(updated.ServiceModules) != 8 {
		t.Fatalf("untouched modules lost: %d", len(updated.ServiceModules))
	}
}

func TestService_ReorderFooterSections_NormalizesOrder(t *testing.T) {
	svc := NewService(NewMemoryStore())

	settings, err := svc.GetFooter(context.Background())
	if err != nil {
		t.Fatalf("get footer: %v", err)
	}
	cols := settings.NavigationSections
	if len(cols) != 3 {
		t.Fatalf("expected 3 default sections, got %d", len(cols))
	}

	updated, err := svc.ReorderFooterSections(context.Background(), []ordering.Update{
		{ID: cols[2].ID, Order: 0},
		{ID: cols[0].ID, Order: 5},
		{ID: cols[1].ID, Order: 2},
	})
	if err != nil {
		t.Fatalf("reorder: %v", err)
	}
	want := []string{cols[2].Title, cols[1].Title, cols[0].Title}
	for i, col := range updated.NavigationSections {
		if col.Title != want[i] || col.Order != i {
			t.Fatalf("slot %d: got %s at %d", i, col.Title, col.Order)
		}
	}
}

func TestService_ReorderFooterSections_RejectsPartialSet(t *testing.T) {
	svc := NewService(NewMemoryStore())

	settings, err := svc.GetFooter(context.Background())
	if err != nil {
		t.Fatalf("get footer: %v", err)
	}

	_, err = svc.ReorderFooterSections(context.Background(), []ordering.Update{
		{ID: settings.NavigationSections[0].ID, Order: 1},
	})
	if err == nil {
		t.Fatal("expected partial reorder to fail")
	}
}

func TestService_ReorderFooterLinks_ScopedToSection(t *testing.T) {
	svc := NewService(NewMemoryStore())

	settings, err := svc.GetFooter(context.Background())
	if err != nil {
		t.Fatalf("get footer: %v", err)
	}
	platform := settings.NavigationSections[1]
	links := platform.Links

	updated, err := svc.ReorderFooterLinks(context.Background(), platform.ID, []ordering.Update{
		{ID: links[2].ID, Order: 0},
		{ID: links[0].ID, Order: 1},
		{ID: links[1].ID, Order: 2},
	})
	if err != nil {
		t.Fatalf("reorder links: %v", err)
	}
	got := updated.NavigationSections[1].Links
	if got[0].Name != "Partners" || got[0].Order != 0 {
		t.Fatalf("unexpected first link %s at %d", got[0].Name, got[0].Order)
	}
	other := updated.NavigationSections[0].Links
	if other[0].Name != "About" {
		t.Fatalf("sibling section disturbed: %s", other[0].Name)
	}
}

func TestService_DeleteFooterSection_RemovesLinks(t *testing.T) {
	svc := NewService(NewMemoryStore())

	settings, err := svc.GetFooter(context.Background())
	if err != nil {
		t.Fatalf("get footer: %v", err)
	}
	target := settings.NavigationSections[1]

	updated, err := svc.DeleteFooterSection(context.Background(), target.ID)
	if err != nil {
		t.Fatalf("delete section: %v", err)
	}
	if len(updated.NavigationSections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(updated.NavigationSections))
	}
	for _, col := range updated.NavigationSections {
		if col.ID == target.ID {
			t.Fatal("deleted section still present")
		}
	}
}

func TestService_DeleteFooterSection_Unknown(t *testing.T) {
	svc := NewService(NewMemoryStore())

	if _, err := svc.GetFooter(context.Background()); err != nil {
		t.Fatalf("get footer: %v", err)
	}

	_, err := svc.DeleteFooterSection(context.Background(), uuid.New())
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestService_UpdateRoadmap_HeaderOnly(t *testing.T) {
	svc := NewService(NewMemoryStore())

	badge := i18n.NewText("Milestones", "Вехи")
	updated, err := svc.UpdateRoadmap(context.Background(), RoadmapPatch{SectionBadge: &badge})
	if err != nil {
		t.Fatalf("update roadmap: %v", err)
	}
	if updated.SectionBadge.EN != "Milestones" {
		t.Fatalf("badge not applied: %q", updated.SectionBadge.EN)
	}
	if updated.SectionTitle.EN != "Project Roadmap" {
		t.Fatalf("untouched title lost: %q", updated.SectionTitle.EN)
	}
}
