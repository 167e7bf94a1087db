package team

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/fomolabs/fomo-cms/internal/i18n"
)

// SocialPlatform enumerates the platforms a team member can link out to.
type SocialPlatform string

const (
	SocialTwitter   SocialPlatform = "twitter"
	SocialLinkedIn  SocialPlatform = "linkedin"
	SocialTelegram  SocialPlatform = "telegram"
	SocialInstagram SocialPlatform = "instagram"
	SocialTikTok    SocialPlatform = "tiktok"
	SocialWebsite   SocialPlatform = "website"
)

// KnownPlatforms lists every supported social platform key.
func KnownPlatforms() []SocialPlatform {
	return []SocialPlatform{
		SocialTwitter,
		SocialLinkedIn,
		SocialTelegram,
		SocialInstagram,
		SocialTikTok,
		SocialWebsite,
	}
}

// Valid reports whether the platform key is one of the supported values.
func (p SocialPlatform) Valid() bool {
	switch p {
	case SocialTwitter, SocialLinkedIn, SocialTelegram, SocialInstagram, SocialTikTok, SocialWebsite:
		return true
	}
	return false
}

// MemberType selects the visual grouping a member renders under.
type MemberType string

const (
	MemberTypeMain    MemberType = "main"
	MemberTypeRegular MemberType = "team_member"
)

// Valid reports whether the member type is one of the supported values.
func (t MemberType) Valid() bool {
	return t == MemberTypeMain || t == MemberTypeRegular
}

// ParseMemberType normalizes a raw member type, defaulting to the regular
// grouping for unknown values.
func ParseMemberType(raw string) MemberType {
	if MemberType(strings.ToLower(strings.TrimSpace(raw))) == MemberTypeMain {
		return MemberTypeMain
	}
	return MemberTypeRegular
}

// Member is one person on the team page.
type Member struct {
	bun.BaseModel `bun:"table:team_members,alias:tm"`

	ID               uuid.UUID                 `bun:",pk,type:uuid" json:"id"`
	Name             i18n.Text                 `bun:"embed:name_" json:"name"`
	Role             i18n.Text                 `bun:"embed:role_" json:"role"`
	Bio              i18n.Text                 `bun:"embed:bio_" json:"bio"`
	ImageURL         string                    `bun:"image_url" json:"image_url,omitempty"`
	SocialLinks      map[SocialPlatform]string `bun:"social_links,type:jsonb" json:"social_links,omitempty"`
	DisplayedSocials []SocialPlatform          `bun:"displayed_socials,type:jsonb" json:"displayed_socials,omitempty"`
	MemberType       MemberType                `bun:"member_type,notnull,default:'team_member'" json:"member_type"`
	Position         int                       `bun:"position,notnull,default:0" json:"position"`
	CreatedAt        time.Time                 `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt        time.Time                 `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

func (m *Member) RankID() uuid.UUID { return m.ID }
func (m *Member) Rank() int         { return m.Position }
func (m *Member) RankedAt() time.Time { return m.CreatedAt }
