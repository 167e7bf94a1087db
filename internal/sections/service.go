package sections

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fomolabs/fomo-cms/internal/i18n"
	"github.com/fomolabs/fomo-cms/internal/ordering"
)

// Service exposes the settings singletons. Every section reads through
// defaults: the first Get on a missing key persists the default document so
// later partial updates always merge against a full record.
type Service interface {
	GetHero(ctx context.Context) (HeroSettings, error)
	UpdateHero(ctx context.Context, patch HeroPatch) (HeroSettings, error)

	GetAbout(ctx context.Context) (AboutSettings, error)
	UpdateAbout(ctx context.Context, patch AboutPatch) (AboutSettings, error)

	GetPlatform(ctx context.Context) (PlatformSettings, error)
	UpdatePlatform(ctx context.Context, patch PlatformPatch) (PlatformSettings, error)

	GetCommunity(ctx context.Context) (CommunitySettings, error)
	UpdateCommunity(ctx context.Context, patch CommunityPatch) (CommunitySettings, error)

	GetFooter(ctx context.Context) (FooterSettings, error)
	UpdateFooter(ctx context.Context, patch FooterPatch) (FooterSettings, error)
	ReorderFooterSections(ctx context.Context, updates []ordering.Update) (FooterSettings, error)
	ReorderFooterLinks(ctx context.Context, sectionID uuid.UUID, updates []ordering.Update) (FooterSettings, error)
	DeleteFooterSection(ctx context.Context, sectionID uuid.UUID) (FooterSettings, error)

	GetRoadmap(ctx context.Context) (RoadmapSettings, error)
	UpdateRoadmap(ctx context.Context, patch RoadmapPatch) (RoadmapSettings, error)
}

type HeroPatch struct {
	Badge       *string      `json:"badge,omitempty"`
	TitleLine1  *string      `json:"title_line1,omitempty"`
	TitleLine2  *string      `json:"title_line2,omitempty"`
	Subtitle    *string      `json:"subtitle,omitempty"`
	Stats       []HeroStat   `json:"stats,omitempty"`
	NFTSettings *NFTSettings `json:"nft_settings,omitempty"`
}

type AboutPatch struct {
	Badge                *string        `json:"badge,omitempty"`
	Title                *string        `json:"title,omitempty"`
	TitleHighlight       *string        `json:"title_highlight,omitempty"`
	Subtitle             *string        `json:"subtitle,omitempty"`
	Description          *string        `json:"description,omitempty"`
	SocialEngagement     *string        `json:"social_engagement,omitempty"`
	DataAnalytics        *string        `json:"data_analytics,omitempty"`
	SeamlessAccess       *string        `json:"seamless_access,omitempty"`
	DescriptionEnd       *string        `json:"description_end,omitempty"`
	Features             []AboutFeature `json:"features,omitempty"`
	WhitepaperButtonText *string        `json:"whitepaper_button_text,omitempty"`
}

type PlatformPatch struct {
	Community      *PlatformStat   `json:"community,omitempty"`
	Visits         *PlatformStat   `json:"visits,omitempty"`
	Projects       *PlatformStat   `json:"projects,omitempty"`
	Alerts         *PlatformStat   `json:"alerts,omitempty"`
	ServiceModules []ServiceModule `json:"service_modules,omitempty"`
	ServicesList   []ServiceItem   `json:"services_list,omitempty"`
	BottomStats    []BottomStat    `json:"bottom_stats,omitempty"`
	SectionBadge   *i18n.Text      `json:"section_badge,omitempty"`
	SectionTitle   *i18n.Text      `json:"section_title,omitempty"`
	SectionIntro   *i18n.Text      `json:"section_intro,omitempty"`
}

type CommunityPatch struct {
	Title            *i18n.Text        `json:"title,omitempty"`
	Description      *i18n.Text        `json:"description,omitempty"`
	Socials          []CommunitySocial `json:"socials,omitempty"`
	SubscribeEnabled *bool             `json:"subscribe_enabled,omitempty"`
	SubscribeTitle   *i18n.Text        `json:"subscribe_title,omitempty"`
}

type FooterPatch struct {
	CompanyName        *string           `json:"company_name,omitempty"`
	CompanyDescription *string           `json:"company_description,omitempty"`
	CompanyAddress     *string           `json:"company_address,omitempty"`
	CompanyPhone       *string           `json:"company_phone,omitempty"`
	CompanyEmail       *string           `json:"company_email,omitempty"`
	SocialMedia        []SocialMediaLink `json:"social_media,omitempty"`
	NavigationSections []FooterSection   `json:"navigation_sections,omitempty"`

	CTAButtonText *string `json:"cta_button_text,omitempty"`
	CTAButtonURL  *string `json:"cta_button_url,omitempty"`

	RegulatoryDisclosuresURL *string `json:"regulatory_disclosures_url,omitempty"`
	PrivacyNoticeURL         *string `json:"privacy_notice_url,omitempty"`
	SecurityURL              *string `json:"security_url,omitempty"`

	CopyrightText   *string `json:"copyright_text,omitempty"`
	LegalDisclaimer *string `json:"legal_disclaimer,omitempty"`

	MadeByText *string `json:"made_by_text,omitempty"`
	MadeByURL  *string `json:"made_by_url,omitempty"`
}

type RoadmapPatch struct {
	SectionBadge    *i18n.Text `json:"section_badge,omitempty"`
	SectionTitle    *i18n.Text `json:"section_title,omitempty"`
	SectionSubtitle *i18n.Text `json:"section_subtitle,omitempty"`
}

// ServiceOption configures sections service behaviour.
type ServiceOption func(*service)

func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

type service struct {
	store Store
	now   func() time.Time
}

// NewService constructs a sections service instance.
func NewService(store Store, opts ...ServiceOption) Service {
	s := &service{store: store, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func loadSection[T any](ctx context.Context, s *service, key string, defaults func() T) (T, error) {
	var zero T
	record, err := s.store.Load(ctx, key)
	if err != nil {
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			return zero, err
		}
		value := defaults()
		if err := saveSection(ctx, s, key, value); err != nil {
			return zero, err
		}
		return value, nil
	}

	var value T
	if err := json.Unmarshal(record.Payload, &value); err != nil {
		return zero, fmt.Errorf("section %q payload: %w", key, err)
	}
	return value, nil
}

func saveSection[T any](ctx context.Context, s *service, key string, value T) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("section %q payload: %w", key, err)
	}
	_, err = s.store.Save(ctx, &Record{Key: key, Payload: payload, UpdatedAt: s.now()})
	return err
}

func (s *service) GetHero(ctx context.Context) (HeroSettings, error) {
	return loadSection(ctx, s, KeyHero, DefaultHeroSettings)
}

func (s *service) UpdateHero(ctx context.Context, patch HeroPatch) (HeroSettings, error) {
	settings, err := s.GetHero(ctx)
	if err != nil {
		return HeroSettings{}, err
	}
	applyString(&settings.Badge, patch.Badge)
	applyString(&settings.TitleLine1, patch.TitleLine1)
	applyString(&settings.TitleLine2, patch.TitleLine2)
	applyString(&settings.Subtitle, patch.Subtitle)
	if patch.Stats != nil {
		stats := make([]HeroStat, len(patch.Stats))
		for i, stat := range patch.Stats {
			stat.Label = i18n.Mirror(stat.Label)
			stats[i] = stat
		}
		settings.Stats = stats
	}
	if patch.NFTSettings != nil {
		settings.NFTSettings = *patch.NFTSettings
	}
	if err := saveSection(ctx, s, KeyHero, settings); err != nil {
		return HeroSettings{}, err
	}
	return settings, nil
}

func (s *service) GetAbout(ctx context.Context) (AboutSettings, error) {
	return loadSection(ctx, s, KeyAbout, DefaultAboutSettings)
}

func (s *service) UpdateAbout(ctx context.Context, patch AboutPatch) (AboutSettings, error) {
	settings, err := s.GetAbout(ctx)
	if err != nil {
		return AboutSettings{}, err
	}
	applyString(&settings.Badge, patch.Badge)
	applyString(&settings.Title, patch.Title)
	applyString(&settings.TitleHighlight, patch.TitleHighlight)
	applyString(&settings.Subtitle, patch.Subtitle)
	applyString(&settings.Description, patch.Description)
	applyString(&settings.SocialEngagement, patch.SocialEngagement)
	applyString(&settings.DataAnalytics, patch.DataAnalytics)
	applyString(&settings.SeamlessAccess, patch.SeamlessAccess)
	applyString(&settings.DescriptionEnd, patch.DescriptionEnd)
	if patch.Features != nil {
		settings.Features = patch.Features
	}
	applyString(&settings.WhitepaperButtonText, patch.WhitepaperButtonText)
	if err := saveSection(ctx, s, KeyAbout, settings); err != nil {
		return AboutSettings{}, err
	}
	return settings, nil
}

func (s *service) GetPlatform(ctx context.Context) (PlatformSettings, error) {
	return loadSection(ctx, s, KeyPlatform, DefaultPlatformSettings)
}

func (s *service) UpdatePlatform(ctx context.Context, patch PlatformPatch) (PlatformSettings, error) {
	settings, err := s.GetPlatform(ctx)
	if err != nil {
		return PlatformSettings{}, err
	}
	if patch.Community != nil {
		settings.Community = mirrorStat(*patch.Community)
	}
	if patch.Visits != nil {
		settings.Visits = mirrorStat(*patch.Visits)
	}
	if patch.Projects != nil {
		settings.Projects = mirrorStat(*patch.Projects)
	}
	if patch.Alerts != nil {
		settings.Alerts = mirrorStat(*patch.Alerts)
	}
	if patch.ServiceModules != nil {
		modules := make([]ServiceModule, len(patch.ServiceModules))
		for i, module := range patch.ServiceModules {
			module.Name = i18n.Mirror(module.Name)
			module.Label = i18n.Mirror(module.Label)
			modules[i] = module
		}
		settings.ServiceModules = modules
	}
	if patch.ServicesList != nil {
		items := make([]ServiceItem, len(patch.ServicesList))
		for i, item := range patch.ServicesList {
			item.Title = i18n.Mirror(item.Title)
			item.Description = i18n.Mirror(item.Description)
			items[i] = item
		}
		settings.ServicesList = items
	}
	if patch.BottomStats != nil {
		stats := make([]BottomStat, len(patch.BottomStats))
		for i, stat := range patch.BottomStats {
			stat.Label = i18n.Mirror(stat.Label)
			stat.Description = i18n.Mirror(stat.Description)
			stats[i] = stat
		}
		settings.BottomStats = stats
	}
	applyText(&settings.SectionBadge, patch.SectionBadge)
	applyText(&settings.SectionTitle, patch.SectionTitle)
	applyText(&settings.SectionIntro, patch.SectionIntro)
	if err := saveSection(ctx, s, KeyPlatform, settings); err != nil {
		return PlatformSettings{}, err
	}
	return settings, nil
}

func (s *service) GetCommunity(ctx context.Context) (CommunitySettings, error) {
	return loadSection(ctx, s, KeyCommunity, DefaultCommunitySettings)
}

func (s *service) UpdateCommunity(ctx context.Context, patch CommunityPatch) (CommunitySettings, error) {
	settings, err := s.GetCommunity(ctx)
	if err != nil {
		return CommunitySettings{}, err
	}
	applyText(&settings.Title, patch.Title)
	applyText(&settings.Description, patch.Description)
	if patch.Socials != nil {
		settings.Socials = patch.Socials
	}
	if patch.SubscribeEnabled != nil {
		settings.SubscribeEnabled = *patch.SubscribeEnabled
	}
	applyText(&settings.SubscribeTitle, patch.SubscribeTitle)
	if err := saveSection(ctx, s, KeyCommunity, settings); err != nil {
		return CommunitySettings{}, err
	}
	return settings, nil
}

func (s *service) GetFooter(ctx context.Context) (FooterSettings, error) {
	return loadSection(ctx, s, KeyFooter, DefaultFooterSettings)
}

func (s *service) UpdateFooter(ctx context.Context, patch FooterPatch) (FooterSettings, error) {
	settings, err := s.GetFooter(ctx)
	if err != nil {
		return FooterSettings{}, err
	}
	applyString(&settings.CompanyName, patch.CompanyName)
	applyString(&settings.CompanyDescription, patch.CompanyDescription)
	applyString(&settings.CompanyAddress, patch.CompanyAddress)
	applyString(&settings.CompanyPhone, patch.CompanyPhone)
	applyString(&settings.CompanyEmail, patch.CompanyEmail)
	if patch.SocialMedia != nil {
		settings.SocialMedia = patch.SocialMedia
	}
	if patch.NavigationSections != nil {
		settings.NavigationSections = normalizeFooterSections(patch.NavigationSections)
	}
	applyString(&settings.CTAButtonText, patch.CTAButtonText)
	applyString(&settings.CTAButtonURL, patch.CTAButtonURL)
	applyString(&settings.RegulatoryDisclosuresURL, patch.RegulatoryDisclosuresURL)
	applyString(&settings.PrivacyNoticeURL, patch.PrivacyNoticeURL)
	applyString(&settings.SecurityURL, patch.SecurityURL)
	applyString(&settings.CopyrightText, patch.CopyrightText)
	applyString(&settings.LegalDisclaimer, patch.LegalDisclaimer)
	applyString(&settings.MadeByText, patch.MadeByText)
	applyString(&settings.MadeByURL, patch.MadeByURL)
	if err := saveSection(ctx, s, KeyFooter, settings); err != nil {
		return FooterSettings{}, err
	}
	return settings, nil
}

func (s *service) ReorderFooterSections(ctx context.Context, updates []ordering.Update) (FooterSettings, error) {
	settings, err := s.GetFooter(ctx)
	if err != nil {
		return FooterSettings{}, err
	}

	cols := make([]*FooterSection, len(settings.NavigationSections))
	for i := range settings.NavigationSections {
		cols[i] = &settings.NavigationSections[i]
	}
	plan, err := ordering.Plan("footer_sections", cols, updates)
	if err != nil {
		return FooterSettings{}, err
	}
	byID := make(map[uuid.UUID]*FooterSection, len(cols))
	for _, col := range cols {
		byID[col.ID] = col
	}
	for _, upd := range plan {
		byID[upd.ID].Order = upd.Order
	}
	ordering.Sort(cols)
	sorted := make([]FooterSection, len(cols))
	for i, col := range cols {
		sorted[i] = *col
	}
	settings.NavigationSections = sorted

	if err := saveSection(ctx, s, KeyFooter, settings); err != nil {
		return FooterSettings{}, err
	}
	return settings, nil
}

func (s *service) ReorderFooterLinks(ctx context.Context, sectionID uuid.UUID, updates []ordering.Update) (FooterSettings, error) {
	settings, err := s.GetFooter(ctx)
	if err != nil {
		return FooterSettings{}, err
	}

	var target *FooterSection
	for i := range settings.NavigationSections {
		if settings.NavigationSections[i].ID == sectionID {
			target = &settings.NavigationSections[i]
			break
		}
	}
	if target == nil {
		return FooterSettings{}, &NotFoundError{Resource: "footer_section", Key: sectionID.String()}
	}

	links := make([]*FooterLink, len(target.Links))
	for i := range target.Links {
		links[i] = &target.Links[i]
	}
	plan, err := ordering.Plan("footer_links", links, updates)
	if err != nil {
		return FooterSettings{}, err
	}
	byID := make(map[uuid.UUID]*FooterLink, len(links))
	for _, link := range links {
		byID[link.ID] = link
	}
	for _, upd := range plan {
		byID[upd.ID].Order = upd.Order
	}
	ordering.Sort(links)
	sorted := make([]FooterLink, len(links))
	for i, link := range links {
		sorted[i] = *link
	}
	target.Links = sorted

	if err := saveSection(ctx, s, KeyFooter, settings); err != nil {
		return FooterSettings{}, err
	}
	return settings, nil
}

func (s *service) DeleteFooterSection(ctx context.Context, sectionID uuid.UUID) (FooterSettings, error) {
	settings, err := s.GetFooter(ctx)
	if err != nil {
		return FooterSettings{}, err
	}

	kept := settings.NavigationSections[:0]
	found := false
	for _, col := range settings.NavigationSections {
		if col.ID == sectionID {
			found = true
			continue
		}
		kept = append(kept, col)
	}
	if !found {
		return FooterSettings{}, &NotFoundError{Resource: "footer_section", Key: sectionID.String()}
	}
	settings.NavigationSections = kept

	if err := saveSection(ctx, s, KeyFooter, settings); err != nil {
		return FooterSettings{}, err
	}
	return settings, nil
}

func (s *service) GetRoadmap(ctx context.Context) (RoadmapSettings, error) {
	return loadSection(ctx, s, KeyRoadmap, DefaultRoadmapSettings)
}

func (s *service) UpdateRoadmap(ctx context.Context, patch RoadmapPatch) (RoadmapSettings, error) {
	settings, err := s.GetRoadmap(ctx)
	if err != nil {
		return RoadmapSettings{}, err
	}
	applyText(&settings.SectionBadge, patch.SectionBadge)
	applyText(&settings.SectionTitle, patch.SectionTitle)
	applyText(&settings.SectionSubtitle, patch.SectionSubtitle)
	if err := saveSection(ctx, s, KeyRoadmap, settings); err != nil {
		return RoadmapSettings{}, err
	}
	return settings, nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func applyText(dst *i18n.Text, src *i18n.Text) {
	if src != nil {
		*dst = i18n.Mirror(*src)
	}
}

func mirrorStat(stat PlatformStat) PlatformStat {
	stat.Label = i18n.Mirror(stat.Label)
	if len(stat.Trend) == 0 {
		stat.Trend = defaultTrend()
	}
	return stat
}

// normalizeFooterSections assigns IDs to freshly submitted sections and
// links and renormalizes their order values.
func normalizeFooterSections(cols []FooterSection) []FooterSection {
	out := make([]FooterSection, len(cols))
	copy(out, cols)
	for i := range out {
		if out[i].ID == uuid.Nil {
			out[i].ID = uuid.New()
		}
		out[i].Order = i
		links := make([]FooterLink, len(out[i].Links))
		copy(links, out[i].Links)
		for j := range links {
			if links[j].ID == uuid.Nil {
				links[j].ID = uuid.New()
			}
			links[j].Order = j
		}
		out[i].Links = links
	}
	return out
}
