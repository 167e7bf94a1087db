package site

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/fomolabs/fomo-cms/internal/partners"
	"github.com/fomolabs/fomo-cms/internal/roadmap"
	"github.com/fomolabs/fomo-cms/internal/sections"
	"github.com/fomolabs/fomo-cms/internal/team"
)

// Empty-state copy per collection. The public page never renders a bare
// empty region: a missing or unreachable collection shows its placeholder
// instead, and only the FAQ section disappears entirely.
const (
	PlaceholderCards     = "New highlights are on the way"
	PlaceholderRoadmap   = "Roadmap coming soon"
	PlaceholderLevels    = "Evolution levels coming soon"
	PlaceholderBadges    = "Badges coming soon"
	PlaceholderTeam      = "Team reveal coming soon"
	PlaceholderPartners  = "Partnerships coming soon"
	PlaceholderNavEmpty  = ""
	PlaceholderNameGlyph = "?"
)

// ListView wraps a rendered collection together with its empty-state copy.
// Placeholder is set only when Items is empty.
type ListView[T any] struct {
	Items       []T    `json:"items"`
	Placeholder string `json:"placeholder,omitempty"`
}

func newListView[T any](items []T, placeholder string) ListView[T] {
	view := ListView[T]{Items: items}
	if len(items) == 0 {
		view.Placeholder = placeholder
	}
	return view
}

type NavLink struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Href  string `json:"href"`
}

type StatView struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type ButtonView struct {
	ID    uuid.UUID `json:"id"`
	Label string    `json:"label"`
	URL   string    `json:"url"`
	Style string    `json:"style"`
}

type HeroView struct {
	Badge       string               `json:"badge"`
	TitleLine1  string               `json:"title_line1"`
	TitleLine2  string               `json:"title_line2"`
	Subtitle    string               `json:"subtitle"`
	Stats       []StatView           `json:"stats"`
	Buttons     []ButtonView         `json:"buttons"`
	NFTSettings sections.NFTSettings `json:"nft_settings"`
}

type PlatformStatView struct {
	Value  string `json:"value"`
	Label  string `json:"label"`
	Change string `json:"change"`
	Trend  []int  `json:"trend"`
}

type ModuleView struct {
	Icon  string `json:"icon"`
	Name  string `json:"name"`
	Count string `json:"count"`
	Label string `json:"label"`
	Color string `json:"color"`
}

type ServiceView struct {
	Num         string `json:"num"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type BottomStatView struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

type PlatformView struct {
	Community    PlatformStatView `json:"community"`
	Visits       PlatformStatView `json:"visits"`
	Projects     PlatformStatView `json:"projects"`
	Alerts       PlatformStatView `json:"alerts"`
	Modules      []ModuleView     `json:"modules"`
	Services     []ServiceView    `json:"services"`
	BottomStats  []BottomStatView `json:"bottom_stats"`
	SectionBadge string           `json:"section_badge"`
	SectionTitle string           `json:"section_title"`
	SectionIntro string           `json:"section_intro"`
}

type CardView struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Link     string    `json:"link"`
	ImageURL string    `json:"image_url,omitempty"`
}

type TaskView struct {
	ID       uuid.UUID      `json:"id"`
	Name     string         `json:"name"`
	Status   roadmap.Status `json:"status"`
	Category string         `json:"category"`
}

type RoadmapView struct {
	Badge    string             `json:"badge"`
	Title    string             `json:"title"`
	Subtitle string             `json:"subtitle"`
	Tasks    ListView[TaskView] `json:"tasks"`
}

type LevelView struct {
	ID                 uuid.UUID `json:"id"`
	Rank               string    `json:"rank"`
	Description        string    `json:"description"`
	FomoScoreMin       int       `json:"fomo_score_min"`
	FomoScoreMax       int       `json:"fomo_score_max"`
	NextLevel          string    `json:"next_level,omitempty"`
	AnimationType      string    `json:"animation_type"`
	AnimationSpeed     float64   `json:"animation_speed"`
	AnimationIntensity float64   `json:"animation_intensity"`
	GradientFrom       string    `json:"gradient_from,omitempty"`
	GradientTo         string    `json:"gradient_to,omitempty"`
}

type BadgeView struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	XPRequirement int       `json:"xp_requirement"`
	Condition     string    `json:"condition,omitempty"`
	AnimationType string    `json:"animation_type"`
	GradientFrom  string    `json:"gradient_from,omitempty"`
	GradientTo    string    `json:"gradient_to,omitempty"`
}

type EvolutionView struct {
	Levels ListView[LevelView] `json:"levels"`
	Badges ListView[BadgeView] `json:"badges"`
}

type SocialView struct {
	Platform team.SocialPlatform `json:"platform"`
	URL      string              `json:"url"`
}

type MemberView struct {
	ID       uuid.UUID    `json:"id"`
	Name     string       `json:"name"`
	Role     string       `json:"role"`
	Bio      string       `json:"bio,omitempty"`
	ImageURL string       `json:"image_url,omitempty"`
	Socials  []SocialView `json:"socials,omitempty"`
}

type TeamView struct {
	Main        []MemberView `json:"main"`
	Members     []MemberView `json:"members"`
	Placeholder string       `json:"placeholder,omitempty"`
}

type PartnerView struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Initial     string            `json:"initial"`
	Description string            `json:"description,omitempty"`
	Link        string            `json:"link,omitempty"`
	ImageURL    string            `json:"image_url,omitempty"`
	Category    partners.Category `json:"category"`
}

type PartnersView struct {
	Category    partners.Category `json:"category"`
	Search      string            `json:"search,omitempty"`
	Page        int               `json:"page"`
	PageSize    int               `json:"page_size"`
	TotalPages  int               `json:"total_pages"`
	Total       int               `json:"total"`
	Items       []PartnerView     `json:"items"`
	Placeholder string            `json:"placeholder,omitempty"`
}

type CommunityView struct {
	Title            string                     `json:"title"`
	Description      string                     `json:"description"`
	Socials          []sections.CommunitySocial `json:"socials"`
	SubscribeEnabled bool                       `json:"subscribe_enabled"`
	SubscribeTitle   string                     `json:"subscribe_title"`
}

type FAQItemView struct {
	ID       uuid.UUID `json:"id"`
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
}

// FAQView is omitted from the page entirely when there are no items, so the
// projection carries it as a pointer.
type FAQView struct {
	Items []FAQItemView `json:"items"`
}

// View is one full public page render: every section localized, sorted and
// reduced to plain strings.
type View struct {
	Language   string                  `json:"language"`
	Navigation []NavLink               `json:"navigation"`
	Hero       HeroView                `json:"hero"`
	About      sections.AboutSettings  `json:"about"`
	Platform   PlatformView            `json:"platform"`
	Cards      ListView[CardView]      `json:"cards"`
	Roadmap    RoadmapView             `json:"roadmap"`
	Evolution  EvolutionView           `json:"evolution"`
	Team       TeamView                `json:"team"`
	Partners   PartnersView            `json:"partners"`
	Community  CommunityView           `json:"community"`
	FAQ        *FAQView                `json:"faq,omitempty"`
	Footer     sections.FooterSettings `json:"footer"`
}

// PartnerFilter models the visitor-side pagination state of the partners
// grid. Changing the category or the search text resets the page back to
// the first one, flipping pages keeps the filter.
type PartnerFilter struct {
	mu       sync.Mutex
	category partners.Category
	search   string
	page     int
}

func NewPartnerFilter() *PartnerFilter {
	return &PartnerFilter{category: partners.CategoryPartners, page: 1}
}

func (f *PartnerFilter) SetCategory(category partners.Category) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.category != category {
		f.category = category
		f.page = 1
	}
}

func (f *PartnerFilter) SetSearch(search string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.search != search {
		f.search = search
		f.page = 1
	}
}

func (f *PartnerFilter) SetPage(page int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if page < 1 {
		page = 1
	}
	f.page = page
}

func (f *PartnerFilter) snapshot() (partners.Category, string, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.category, f.search, f.page
}

// nameInitial derives the single-glyph avatar fallback for cards without an
// image. Entities with no resolvable name get a fixed placeholder glyph
// instead of an empty badge.
func nameInitial(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return PlaceholderNameGlyph
	}
	r, _ := utf8.DecodeRuneInString(trimmed)
	return string(unicode.ToUpper(r))
}
