package sections

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/fomolabs/fomo-cms/internal/i18n"
)

// Record is the storage row behind every settings singleton. Each section
// lives under its own key with the whole document serialized into Payload,
// so a section update is always a single row write.
type Record struct {
	bun.BaseModel `bun:"table:site_sections,alias:ss"`

	ID        uuid.UUID       `bun:",pk,type:uuid" json:"id"`
	Key       string          `bun:"key,notnull,unique" json:"key"`
	Payload   json.RawMessage `bun:"payload,type:jsonb" json:"payload"`
	UpdatedAt time.Time       `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Section keys. One row per key.
const (
	KeyHero      = "hero_settings"
	KeyAbout     = "about_settings"
	KeyPlatform  = "platform_settings"
	KeyCommunity = "community_settings"
	KeyFooter    = "footer_settings"
	KeyRoadmap   = "roadmap_settings"
)

// HeroStat is one headline figure under the hero copy.
type HeroStat struct {
	Value string    `json:"value"`
	Label i18n.Text `json:"label"`
}

// NFTSettings drives the mint widget embedded in the hero.
type NFTSettings struct {
	PricePerBox       float64 `json:"price_per_box"`
	DiscountThreshold int     `json:"discount_threshold"`
	DiscountPercent   int     `json:"discount_percent"`
	TotalSupply       int     `json:"total_supply"`
	MaxPerWallet      int     `json:"max_per_wallet"`
}

// HeroSettings is the hero section singleton. Badge, title and subtitle are
// English-only brand copy and stay unlocalized on purpose.
type HeroSettings struct {
	Badge       string      `json:"badge"`
	TitleLine1  string      `json:"title_line1"`
	TitleLine2  string      `json:"title_line2"`
	Subtitle    string      `json:"subtitle"`
	Stats       []HeroStat  `json:"stats"`
	NFTSettings NFTSettings `json:"nft_settings"`
}

// AboutFeature is one of the feature cards in the about grid.
type AboutFeature struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

type AboutSettings struct {
	Badge                string         `json:"badge"`
	Title                string         `json:"title"`
	TitleHighlight       string         `json:"title_highlight"`
	Subtitle             string         `json:"subtitle"`
	Description          string         `json:"description"`
	SocialEngagement     string         `json:"social_engagement"`
	DataAnalytics        string         `json:"data_analytics"`
	SeamlessAccess       string         `json:"seamless_access"`
	DescriptionEnd       string         `json:"description_end"`
	Features             []AboutFeature `json:"features"`
	WhitepaperButtonText string         `json:"whitepaper_button_text"`
}

// PlatformStat is a headline statistic card with a sparkline trend.
type PlatformStat struct {
	Value  string    `json:"value"`
	Label  i18n.Text `json:"label"`
	Change string    `json:"change"`
	Trend  []int     `json:"trend"`
}

type ServiceModule struct {
	Icon  string    `json:"icon"`
	Name  i18n.Text `json:"name"`
	Count string    `json:"count"`
	Label i18n.Text `json:"label"`
	Color string    `json:"color"`
}

type ServiceItem struct {
	Num         string    `json:"num"`
	Title       i18n.Text `json:"title"`
	Description i18n.Text `json:"description"`
}

type BottomStat struct {
	Value       string    `json:"value"`
	Label       i18n.Text `json:"label"`
	Description i18n.Text `json:"description"`
}

type PlatformSettings struct {
	Community      PlatformStat    `json:"community"`
	Visits         PlatformStat    `json:"visits"`
	Projects       PlatformStat    `json:"projects"`
	Alerts         PlatformStat    `json:"alerts"`
	ServiceModules []ServiceModule `json:"service_modules"`
	ServicesList   []ServiceItem   `json:"services_list"`
	BottomStats    []BottomStat    `json:"bottom_stats"`
	SectionBadge   i18n.Text       `json:"section_badge"`
	SectionTitle   i18n.Text       `json:"section_title"`
	SectionIntro   i18n.Text       `json:"section_intro"`
}

type CommunitySocial struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Enabled  bool   `json:"enabled"`
}

type CommunitySettings struct {
	Title            i18n.Text         `json:"title"`
	Description      i18n.Text         `json:"description"`
	Socials          []CommunitySocial `json:"socials"`
	SubscribeEnabled bool              `json:"subscribe_enabled"`
	SubscribeTitle   i18n.Text         `json:"subscribe_title"`
}

type SocialMediaLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon,omitempty"`
}

// FooterLink is one ordered entry inside a footer navigation column.
type FooterLink struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	URL   string    `json:"url"`
	Order int       `json:"order"`
}

func (l *FooterLink) RankID() uuid.UUID { return l.ID }
func (l *FooterLink) Rank() int         { return l.Order }

// FooterSection is an ordered navigation column. Deleting a section drops
// its links with it, they have no life outside the column.
type FooterSection struct {
	ID    uuid.UUID    `json:"id"`
	Title string       `json:"title"`
	Links []FooterLink `json:"links"`
	Order int          `json:"order"`
}

func (s *FooterSection) RankID() uuid.UUID { return s.ID }
func (s *FooterSection) Rank() int         { return s.Order }

type FooterSettings struct {
	CompanyName        string            `json:"company_name"`
	CompanyDescription string            `json:"company_description"`
	CompanyAddress     string            `json:"company_address"`
	CompanyPhone       string            `json:"company_phone"`
	CompanyEmail       string            `json:"company_email,omitempty"`
	SocialMedia        []SocialMediaLink `json:"social_media"`
	NavigationSections []FooterSection   `json:"navigation_sections"`

	CTAButtonText string `json:"cta_button_text"`
	CTAButtonURL  string `json:"cta_button_url"`

	RegulatoryDisclosuresURL string `json:"regulatory_disclosures_url,omitempty"`
	PrivacyNoticeURL         string `json:"privacy_notice_url,omitempty"`
	SecurityURL              string `json:"security_url,omitempty"`

	CopyrightText   string `json:"copyright_text"`
	LegalDisclaimer string `json:"legal_disclaimer"`

	MadeByText string `json:"made_by_text,omitempty"`
	MadeByURL  string `json:"made_by_url,omitempty"`
}

// RoadmapSettings carries only the section header copy. Tasks are a proper
// collection and live in their own package.
type RoadmapSettings struct {
	SectionBadge    i18n.Text `json:"section_badge"`
	SectionTitle    i18n.Text `json:"section_title"`
	SectionSubtitle i18n.Text `json:"section_subtitle"`
}
