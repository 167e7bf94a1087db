// Package site builds the read-only projection served to anonymous
// visitors. It pulls every collection and settings singleton, resolves the
// bilingual fields for the requested language and degrades any backend
// failure to the section's empty state so the page always renders.
package site

import (
	"context"
	"strings"

	"github.com/fomolabs/fomo-cms/internal/cards"
	"github.com/fomolabs/fomo-cms/internal/evolution"
	"github.com/fomolabs/fomo-cms/internal/faq"
	"github.com/fomolabs/fomo-cms/internal/hero"
	"github.com/fomolabs/fomo-cms/internal/i18n"
	"github.com/fomolabs/fomo-cms/internal/logging"
	"github.com/fomolabs/fomo-cms/internal/navigation"
	"github.com/fomolabs/fomo-cms/internal/partners"
	"github.com/fomolabs/fomo-cms/internal/roadmap"
	"github.com/fomolabs/fomo-cms/internal/sections"
	"github.com/fomolabs/fomo-cms/internal/team"
	"github.com/fomolabs/fomo-cms/pkg/interfaces"
)

const defaultPageSize = 8

// Services enumerates everything the projector reads from. All fields are
// required.
type Services struct {
	Navigation navigation.Service
	Sections   sections.Service
	Hero       hero.Service
	Cards      cards.Service
	Roadmap    roadmap.Service
	Evolution  evolution.Service
	Team       team.Service
	Partners   partners.Service
	FAQ        faq.Service
}

// ProjectorOption configures projector behaviour.
type ProjectorOption func(*Projector)

func WithLogger(logger interfaces.Logger) ProjectorOption {
	return func(p *Projector) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithPartnersPageSize overrides the partners grid page size.
func WithPartnersPageSize(size int) ProjectorOption {
	return func(p *Projector) {
		if size > 0 {
			p.pageSize = size
		}
	}
}

// Projector renders the public view of the site. It never writes.
type Projector struct {
	svc      Services
	pageSize int
	logger   interfaces.Logger
}

func NewProjector(svc Services, opts ...ProjectorOption) *Projector {
	p := &Projector{svc: svc, pageSize: defaultPageSize, logger: logging.NoOp()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Build assembles the full page view for one language. Every section is
// fetched independently: a failing collection logs and renders its empty
// state, it never fails the whole page.
func (p *Projector) Build(ctx context.Context, lang i18n.Language) View {
	view := View{Language: string(lang)}
	view.Navigation = p.navigationView(ctx, lang)
	view.Hero = p.heroView(ctx, lang)
	view.About = p.aboutView(ctx)
	view.Platform = p.platformView(ctx, lang)
	view.Cards = p.cardsView(ctx, lang)
	view.Roadmap = p.roadmapView(ctx, lang)
	view.Evolution = p.evolutionView(ctx, lang)
	view.Team = p.teamView(ctx, lang)
	view.Partners = p.Partners(ctx, lang, NewPartnerFilter())
	view.Community = p.communityView(ctx, lang)
	view.FAQ = p.faqView(ctx)
	view.Footer = p.footerView(ctx)
	return view
}

func (p *Projector) navigationView(ctx context.Context, lang i18n.Language) []NavLink {
	items, err := p.svc.Navigation.ListActiveItems(ctx)
	if err != nil {
		p.logger.Warn("navigation fetch failed, rendering empty", "error", err)
		return []NavLink{}
	}
	links := make([]NavLink, 0, len(items))
	for _, item := range items {
		links = append(links, NavLink{
			Key:   item.Key,
			Label: item.Label.Resolve(lang),
			Href:  item.Href,
		})
	}
	return links
}

func (p *Projector) heroView(ctx context.Context, lang i18n.Language) HeroView {
	view := HeroView{Stats: []StatView{}, Buttons: []ButtonView{}}

	settings, err := p.svc.Sections.GetHero(ctx)
	if err != nil {
		p.logger.Warn("hero settings fetch failed, rendering empty", "error", err)
	} else {
		view.Badge = settings.Badge
		view.TitleLine1 = settings.TitleLine1
		view.TitleLine2 = settings.TitleLine2
		view.Subtitle = settings.Subtitle
		view.NFTSettings = settings.NFTSettings
		for _, stat := range settings.Stats {
			view.Stats = append(view.Stats, StatView{Value: stat.Value, Label: stat.Label.Resolve(lang)})
		}
	}

	buttons, err := p.svc.Hero.ListActiveButtons(ctx)
	if err != nil {
		p.logger.Warn("hero buttons fetch failed, rendering empty", "error", err)
		return view
	}
	for _, button := range buttons {
		view.Buttons = append(view.Buttons, ButtonView{
			ID:    button.ID,
			Label: button.Label,
			URL:   button.URL,
			Style: string(button.Style),
		})
	}
	return view
}

func (p *Projector) aboutView(ctx context.Context) sections.AboutSettings {
	settings, err := p.svc.Sections.GetAbout(ctx)
	if err != nil {
		p.logger.Warn("about settings fetch failed, rendering empty", "error", err)
		return sections.AboutSettings{Features: []sections.AboutFeature{}}
	}
	return settings
}

func (p *Projector) platformView(ctx context.Context, lang i18n.Language) PlatformView {
	settings, err := p.svc.Sections.GetPlatform(ctx)
	if err != nil {
		p.logger.Warn("platform settings fetch failed, rendering empty", "error", err)
		return PlatformView{Modules: []ModuleView{}, Services: []ServiceView{}, BottomStats: []BottomStatView{}}
	}

	view := PlatformView{
		Community:    platformStat(settings.Community, lang),
		Visits:       platformStat(settings.Visits, lang),
		Projects:     platformStat(settings.Projects, lang),
		Alerts:       platformStat(settings.Alerts, lang),
		SectionBadge: settings.SectionBadge.Resolve(lang),
		SectionTitle: settings.SectionTitle.Resolve(lang),
		SectionIntro: settings.SectionIntro.Resolve(lang),
	}
	for _, module := range settings.ServiceModules {
		view.Modules = append(view.Modules, ModuleView{
			Icon:  module.Icon,
			Name:  module.Name.Resolve(lang),
			Count: module.Count,
			Label: module.Label.Resolve(lang),
			Color: module.Color,
		})
	}
	for _, item := range settings.ServicesList {
		view.Services = append(view.Services, ServiceView{
			Num:         item.Num,
			Title:       item.Title.Resolve(lang),
			Description: item.Description.Resolve(lang),
		})
	}
	for _, stat := range settings.BottomStats {
		view.BottomStats = append(view.BottomStats, BottomStatView{
			Value:       stat.Value,
			Label:       stat.Label.Resolve(lang),
			Description: stat.Description.Resolve(lang),
		})
	}
	return view
}

func (p *Projector) cardsView(ctx context.Context, lang i18n.Language) ListView[CardView] {
	records, err := p.svc.Cards.ListCards(ctx)
	if err != nil {
		p.logger.Warn("cards fetch failed, rendering empty", "error", err)
		return newListView[CardView](nil, PlaceholderCards)
	}
	items := make([]CardView, 0, len(records))
	for _, card := range records {
		items = append(items, CardView{
			ID:       card.ID,
			Title:    card.Title.Resolve(lang),
			Link:     card.Link,
			ImageURL: card.ImageURL,
		})
	}
	return newListView(items, PlaceholderCards)
}

func (p *Projector) roadmapView(ctx context.Context, lang i18n.Language) RoadmapView {
	view := RoadmapView{}
	settings, err := p.svc.Sections.GetRoadmap(ctx)
	if err != nil {
		p.logger.Warn("roadmap settings fetch failed, rendering empty", "error", err)
	} else {
		view.Badge = settings.SectionBadge.Resolve(lang)
		view.Title = settings.SectionTitle.Resolve(lang)
		view.Subtitle = settings.SectionSubtitle.Resolve(lang)
	}

	records, err := p.svc.Roadmap.ListTasks(ctx)
	if err != nil {
		p.logger.Warn("roadmap tasks fetch failed, rendering empty", "error", err)
		view.Tasks = newListView[TaskView](nil, PlaceholderRoadmap)
		return view
	}
	items := make([]TaskView, 0, len(records))
	for _, task := range records {
		items = append(items, TaskView{
			ID:       task.ID,
			Name:     task.Name.Resolve(lang),
			Status:   task.Status,
			Category: task.Category,
		})
	}
	view.Tasks = newListView(items, PlaceholderRoadmap)
	return view
}

func (p *Projector) evolutionView(ctx context.Context, lang i18n.Language) EvolutionView {
	view := EvolutionView{}

	levels, err := p.svc.Evolution.ListLevels(ctx)
	if err != nil {
		p.logger.Warn("evolution levels fetch failed, rendering empty", "error", err)
		view.Levels = newListView[LevelView](nil, PlaceholderLevels)
	} else {
		items := make([]LevelView, 0, len(levels))
		for _, level := range levels {
			items = append(items, LevelView{
				ID:                 level.ID,
				Rank:               level.Tier.Resolve(lang),
				Description:        level.Description.Resolve(lang),
				FomoScoreMin:       level.FomoScoreMin,
				FomoScoreMax:       level.FomoScoreMax,
				NextLevel:          level.NextLevel,
				AnimationType:      string(level.AnimationType),
				AnimationSpeed:     level.AnimationSpeed,
				AnimationIntensity: level.AnimationIntensity,
				GradientFrom:       level.GradientFrom,
				GradientTo:         level.GradientTo,
			})
		}
		view.Levels = newListView(items, PlaceholderLevels)
	}

	badges, err := p.svc.Evolution.ListBadges(ctx)
	if err != nil {
		p.logger.Warn("evolution badges fetch failed, rendering empty", "error", err)
		view.Badges = newListView[BadgeView](nil, PlaceholderBadges)
		return view
	}
	items := make([]BadgeView, 0, len(badges))
	for _, badge := range badges {
		items = append(items, BadgeView{
			ID:            badge.ID,
			Name:          badge.Name.Resolve(lang),
			Description:   badge.Description.Resolve(lang),
			XPRequirement: badge.XPRequirement,
			Condition:     badge.Condition,
			AnimationType: string(badge.AnimationType),
			GradientFrom:  badge.GradientFrom,
			GradientTo:    badge.GradientTo,
		})
	}
	view.Badges = newListView(items, PlaceholderBadges)
	return view
}

func (p *Projector) teamView(ctx context.Context, lang i18n.Language) TeamView {
	records, err := p.svc.Team.ListMembers(ctx)
	if err != nil {
		p.logger.Warn("team fetch failed, rendering empty", "error", err)
		return TeamView{Main: []MemberView{}, Members: []MemberView{}, Placeholder: PlaceholderTeam}
	}

	view := TeamView{Main: []MemberView{}, Members: []MemberView{}}
	for _, member := range records {
		mv := MemberView{
			ID:       member.ID,
			Name:     member.Name.Resolve(lang),
			Role:     member.Role.Resolve(lang),
			Bio:      member.Bio.Resolve(lang),
			ImageURL: member.ImageURL,
			Socials:  memberSocials(member),
		}
		if member.MemberType == team.MemberTypeMain {
			view.Main = append(view.Main, mv)
		} else {
			view.Members = append(view.Members, mv)
		}
	}
	if len(view.Main) == 0 && len(view.Members) == 0 {
		view.Placeholder = PlaceholderTeam
	}
	return view
}

// memberSocials resolves the member's displayed socials to concrete links.
// Platforms listed without a link are skipped; the cap is an edit-layer
// rule, whatever is stored gets rendered.
func memberSocials(member *team.Member) []SocialView {
	socials := make([]SocialView, 0, len(member.DisplayedSocials))
	for _, platform := range member.DisplayedSocials {
		url, ok := member.SocialLinks[platform]
		if !ok || url == "" {
			continue
		}
		socials = append(socials, SocialView{Platform: platform, URL: url})
	}
	return socials
}

// Partners renders one page of the partners grid for the filter's current
// category, search text and page.
func (p *Projector) Partners(ctx context.Context, lang i18n.Language, filter *PartnerFilter) PartnersView {
	category, search, page := filter.snapshot()
	view := PartnersView{
		Category: category,
		Search:   search,
		Page:     page,
		PageSize: p.pageSize,
		Items:    []PartnerView{},
	}

	records, err := p.svc.Partners.ListPartnersByCategory(ctx, category)
	if err != nil {
		p.logger.Warn("partners fetch failed, rendering empty", "error", err)
		view.Placeholder = PlaceholderPartners
		view.TotalPages = 1
		view.Page = 1
		return view
	}

	filtered := make([]PartnerView, 0, len(records))
	needle := strings.ToLower(strings.TrimSpace(search))
	for _, partner := range records {
		name := partner.Name.Resolve(lang)
		description := partner.Description.Resolve(lang)
		if needle != "" &&
			!strings.Contains(strings.ToLower(name), needle) &&
			!strings.Contains(strings.ToLower(description), needle) {
			continue
		}
		filtered = append(filtered, PartnerView{
			ID:          partner.ID,
			Name:        name,
			Initial:     nameInitial(name),
			Description: description,
			Link:        partner.Link,
			ImageURL:    partner.ImageURL,
			Category:    partner.Category,
		})
	}

	view.Total = len(filtered)
	view.TotalPages = (len(filtered) + p.pageSize - 1) / p.pageSize
	if view.TotalPages == 0 {
		view.TotalPages = 1
	}
	if view.Page > view.TotalPages {
		view.Page = view.TotalPages
	}

	start := (view.Page - 1) * p.pageSize
	end := start + p.pageSize
	if start < len(filtered) {
		if end > len(filtered) {
			end = len(filtered)
		}
		view.Items = filtered[start:end]
	}
	if len(view.Items) == 0 {
		view.Placeholder = PlaceholderPartners
	}
	return view
}

func (p *Projector) communityView(ctx context.Context, lang i18n.Language) CommunityView {
	settings, err := p.svc.Sections.GetCommunity(ctx)
	if err != nil {
		p.logger.Warn("community settings fetch failed, rendering empty", "error", err)
		return CommunityView{Socials: []sections.CommunitySocial{}}
	}
	enabled := make([]sections.CommunitySocial, 0, len(settings.Socials))
	for _, social := range settings.Socials {
		if social.Enabled {
			enabled = append(enabled, social)
		}
	}
	return CommunityView{
		Title:            settings.Title.Resolve(lang),
		Description:      settings.Description.Resolve(lang),
		Socials:          enabled,
		SubscribeEnabled: settings.SubscribeEnabled,
		SubscribeTitle:   settings.SubscribeTitle.Resolve(lang),
	}
}

// faqView returns nil when the FAQ has no items. Unlike every other section
// the FAQ disappears from the page rather than showing a placeholder.
func (p *Projector) faqView(ctx context.Context) *FAQView {
	records, err := p.svc.FAQ.ListItems(ctx)
	if err != nil {
		p.logger.Warn("faq fetch failed, suppressing section", "error", err)
		return nil
	}
	if len(records) == 0 {
		return nil
	}
	items := make([]FAQItemView, 0, len(records))
	for _, item := range records {
		items = append(items, FAQItemView{ID: item.ID, Question: item.Question, Answer: item.Answer})
	}
	return &FAQView{Items: items}
}

func (p *Projector) footerView(ctx context.Context) sections.FooterSettings {
	settings, err := p.svc.Sections.GetFooter(ctx)
	if err != nil {
		p.logger.Warn("footer settings fetch failed, rendering empty", "error", err)
		return sections.FooterSettings{
			SocialMedia:        []sections.SocialMediaLink{},
			NavigationSections: []sections.FooterSection{},
		}
	}
	return settings
}

func platformStat(stat sections.PlatformStat, lang i18n.Language) PlatformStatView {
	return PlatformStatView{
		Value:  stat.Value,
		Label:  stat.Label.Resolve(lang),
		Change: stat.Change,
		Trend:  stat.Trend,
	}
}
