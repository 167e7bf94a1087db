package site

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/fomolabs/fomo-cms/internal/cards"
	"github.com/fomolabs/fomo-cms/internal/evolution"
	"github.com/fomolabs/fomo-cms/internal/faq"
	"github.com/fomolabs/fomo-cms/internal/hero"
	"github.com/fomolabs/fomo-cms/internal/i18n"
	"github.com/fomolabs/fomo-cms/internal/navigation"
	"github.com/fomolabs/fomo-cms/internal/partners"
	"github.com/fomolabs/fomo-cms/internal/roadmap"
	"github.com/fomolabs/fomo-cms/internal/sections"
	"github.com/fomolabs/fomo-cms/internal/team"
)

type fixture struct {
	services    Services
	partnerRepo partners.Repository
}

func newFixture() fixture {
	partnerRepo := partners.NewMemoryRepository()
	return fixture{
		partnerRepo: partnerRepo,
		services: Services{
			Navigation: navigation.NewService(navigation.NewMemoryRepository()),
			Sections:   sections.NewService(sections.NewMemoryStore()),
			Hero:       hero.NewService(hero.NewMemoryRepository()),
			Cards:      cards.NewService(cards.NewMemoryRepository()),
			Roadmap:    roadmap.NewService(roadmap.NewMemoryRepository()),
			Evolution:  evolution.NewService(evolution.NewMemoryLevelRepository(), evolution.NewMemoryBadgeRepository()),
			Team:       team.NewService(team.NewMemoryRepository()),
			Partners:   partners.NewService(partnerRepo),
			FAQ:        faq.NewService(faq.NewMemoryRepository()),
		},
	}
}

func TestProjector_Build_SuppressesEmptyFAQ(t *testing.T) {
	f := newFixture()
	projector := NewProjector(f.services)

	view := projector.Build(context.Background(), i18n.LanguageEN)
	if view.FAQ != nil {
		t.Fatalf("expected FAQ section absent, got %+v", view.FAQ)
	}

	if _, err := f.services.FAQ.CreateItem(context.Background(), faq.CreateItemInput{
		Question: "What is FOMO?",
		Answer:   "A crypto analytics platform.",
	}); err != nil {
		t.Fatalf("create faq item: %v", err)
	}

	view = projector.Build(context.Background(), i18n.LanguageEN)
	if view.FAQ == nil || len(view.FAQ.Items) != 1 {
		t.Fatalf("expected FAQ section with one item, got %+v", view.FAQ)
	}
}

func TestProjector_Build_EmptyCollectionsGetPlaceholders(t *testing.T) {
	f := newFixture()
	projector := NewProjector(f.services)

	view := projector.Build(context.Background(), i18n.LanguageEN)
	if view.Cards.Placeholder == "" {
		t.Fatal("expected cards placeholder")
	}
	if view.Roadmap.Tasks.Placeholder == "" {
		t.Fatal("expected roadmap placeholder")
	}
	if view.Team.Placeholder == "" {
		t.Fatal("expected team placeholder")
	}
	if view.Partners.Placeholder == "" {
		t.Fatal("expected partners placeholder")
	}
}

func TestProjector_Build_ResolvesRequestedLanguage(t *testing.T) {
	f := newFixture()
	if _, err := f.services.Cards.CreateCard(context.Background(), cards.CreateCardInput{
		Title:    i18n.NewText("Analytics", "Аналитика"),
		Link:     "https://fomo.example/analytics",
		ImageURL: "https://img.fomo.example/analytics.png",
	}); err != nil {
		t.Fatalf("create card: %v", err)
	}
	projector := NewProjector(f.services)

	view := projector.Build(context.Background(), i18n.LanguageRU)
	if len(view.Cards.Items) != 1 || view.Cards.Items[0].Title != "Аналитика" {
		t.Fatalf("expected russian title, got %+v", view.Cards.Items)
	}
}

func TestProjector_Partners_EmptyNameRendersPlaceholderInitial(t *testing.T) {
	f := newFixture()
	// Legacy rows can miss both language variants; they are seeded straight
	// through the repository because the service would reject them.
	if _, err := f.partnerRepo.Create(context.Background(), &partners.Partner{
		ID:       uuid.New(),
		Category: partners.CategoryMedia,
	}); err != nil {
		t.Fatalf("seed partner: %v", err)
	}
	projector := NewProjector(f.services)

	filter := NewPartnerFilter()
	filter.SetCategory(partners.CategoryMedia)
	view := projector.Partners(context.Background(), i18n.LanguageEN, filter)
	if len(view.Items) != 1 {
		t.Fatalf("expected one partner, got %d", len(view.Items))
	}
	if view.Items[0].Name != "" {
		t.Fatalf("expected empty name, got %q", view.Items[0].Name)
	}
	if view.Items[0].Initial != PlaceholderNameGlyph {
		t.Fatalf("expected placeholder initial, got %q", view.Items[0].Initial)
	}
}

func TestProjector_Partners_Pagination(t *testing.T) {
	f := newFixture()
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		if _, err := f.services.Partners.CreatePartner(context.Background(), partners.CreatePartnerInput{
			Name:     i18n.NewText(name, ""),
			Category: partners.CategoryPartners,
			ImageURL: "https://img.fomo.example/" + name + ".png",
		}); err != nil {
			t.Fatalf("create partner %q: %v", name, err)
		}
	}
	projector := NewProjector(f.services, WithPartnersPageSize(2))

	filter := NewPartnerFilter()
	view := projector.Partners(context.Background(), i18n.LanguageEN, filter)
	if view.TotalPages != 3 || len(view.Items) != 2 {
		t.Fatalf("page 1: total pages %d items %d", view.TotalPages, len(view.Items))
	}
	if view.Items[0].Name != "a" || view.Items[1].Name != "b" {
		t.Fatalf("page 1 out of order: %s, %s", view.Items[0].Name, view.Items[1].Name)
	}

	filter.SetPage(3)
	view = projector.Partners(context.Background(), i18n.LanguageEN, filter)
	if len(view.Items) != 1 || view.Items[0].Name != "e" {
		t.Fatalf("page 3: %+v", view.Items)
	}
}

func TestPartnerFilter_ChangingFilterResetsPage(t *testing.T) {
	filter := NewPartnerFilter()
	filter.SetPage(3)

	filter.SetCategory(partners.CategoryMedia)
	if _, _, page := filter.snapshot(); page != 1 {
		t.Fatalf("expected page reset on category change, got %d", page)
	}

	filter.SetPage(2)
	filter.SetSearch("fomo")
	if _, _, page := filter.snapshot(); page != 1 {
		t.Fatalf("expected page reset on search change, got %d", page)
	}

	// Same filter values leave the page alone.
	filter.SetPage(2)
	filter.SetSearch("fomo")
	if _, _, page := filter.snapshot(); page != 2 {
		t.Fatalf("expected page kept for identical search, got %d", page)
	}
}

func TestProjector_Partners_SearchFiltersByResolvedName(t *testing.T) {
	f := newFixture()
	for _, name := range []string{"CoinDesk", "Bloomberg"} {
		if _, err := f.services.Partners.CreatePartner(context.Background(), partners.CreatePartnerInput{
			Name:     i18n.NewText(name, ""),
			Category: partners.CategoryMedia,
			ImageURL: "https://img.fomo.example/" + name + ".png",
		}); err != nil {
			t.Fatalf("create partner %q: %v", name, err)
		}
	}
	projector := NewProjector(f.services)

	filter := NewPartnerFilter()
	filter.SetCategory(partners.CategoryMedia)
	filter.SetSearch("coin")
	view := projector.Partners(context.Background(), i18n.LanguageEN, filter)
	if len(view.Items) != 1 || view.Items[0].Name != "CoinDesk" {
		t.Fatalf("unexpected search result: %+v", view.Items)
	}
}

func TestProjector_Build_GroupsTeamByType(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	if _, err := f.services.Team.CreateMember(ctx, team.CreateMemberInput{
		Name:       i18n.NewText("Ada", ""),
		ImageURL:   "https://img.fomo.example/ada.png",
		MemberType: team.MemberTypeMain,
		SocialLinks: map[team.SocialPlatform]string{
			team.SocialTwitter: "https://twitter.com/ada",
		},
		DisplayedSocials: []team.SocialPlatform{team.SocialTwitter},
	}); err != nil {
		t.Fatalf("create main member: %v", err)
	}
	if _, err := f.services.Team.CreateMember(ctx, team.CreateMemberInput{
		Name:     i18n.NewText("Grace", ""),
		ImageURL: "https://img.fomo.example/grace.png",
	}); err != nil {
		t.Fatalf("create regular member: %v", err)
	}
	projector := NewProjector(f.services)

	view := projector.Build(ctx, i18n.LanguageEN)
	if len(view.Team.Main) != 1 || view.Team.Main[0].Name != "Ada" {
		t.Fatalf("unexpected main group: %+v", view.Team.Main)
	}
	if len(view.Team.Members) != 1 || view.Team.Members[0].Name != "Grace" {
		t.Fatalf("unexpected regular group: %+v", view.Team.Members)
	}
	if len(view.Team.Main[0].Socials) != 1 || view.Team.Main[0].Socials[0].Platform != team.SocialTwitter {
		t.Fatalf("unexpected socials: %+v", view.Team.Main[0].Socials)
	}
}

type failingFAQ struct {
	faq.Service
}

func (failingFAQ) ListItems(context.Context) ([]*faq.Item, error) {
	return nil, errors.New("backend down")
}

func TestProjector_Build_FetchFailureDegradesToEmpty(t *testing.T) {
	f := newFixture()
	f.services.FAQ = failingFAQ{}
	projector := NewProjector(f.services)

	view := projector.Build(context.Background(), i18n.LanguageEN)
	if view.FAQ != nil {
		t.Fatalf("expected FAQ suppressed on fetch failure, got %+v", view.FAQ)
	}
	// The rest of the page still renders.
	if view.Hero.Badge == "" {
		t.Fatal("expected hero defaults despite FAQ failure")
	}
}
