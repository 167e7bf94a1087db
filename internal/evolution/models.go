package evolution

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/fomolabs/fomo-cms/internal/i18n"
)

// LevelAnimation keys the icon/animation registry for evolution levels.
type LevelAnimation string

const (
	LevelAnimationStellar   LevelAnimation = "stellar"
	LevelAnimationCosmic    LevelAnimation = "cosmic"
	LevelAnimationGalactic  LevelAnimation = "galactic"
	LevelAnimationCelestial LevelAnimation = "celestial"
	LevelAnimationAstral    LevelAnimation = "astral"
	LevelAnimationUniversal LevelAnimation = "universal"
)

// Valid reports whether the animation key is in the level registry.
func (a LevelAnimation) Valid() bool {
	switch a {
	case LevelAnimationStellar, LevelAnimationCosmic, LevelAnimationGalactic,
		LevelAnimationCelestial, LevelAnimationAstral, LevelAnimationUniversal:
		return true
	}
	return false
}

// BadgeAnimation keys the icon/animation registry for evolution badges. It is
// a separate registry from levels and the two sets of keys never mix.
type BadgeAnimation string

const (
	BadgeAnimationPioneer     BadgeAnimation = "pioneer"
	BadgeAnimationOnboarding  BadgeAnimation = "onboarding"
	BadgeAnimationReviewer    BadgeAnimation = "reviewer"
	BadgeAnimationPredictor   BadgeAnimation = "predictor"
	BadgeAnimationStreak      BadgeAnimation = "streak"
	BadgeAnimationMaker       BadgeAnimation = "maker"
	BadgeAnimationP2P         BadgeAnimation = "p2p"
	BadgeAnimationCommunity   BadgeAnimation = "community"
	BadgeAnimationSingularity BadgeAnimation = "singularity"
)

// Valid reports whether the animation key is in the badge registry.
func (a BadgeAnimation) Valid() bool {
	switch a {
	case BadgeAnimationPioneer, BadgeAnimationOnboarding, BadgeAnimationReviewer,
		BadgeAnimationPredictor, BadgeAnimationStreak, BadgeAnimationMaker,
		BadgeAnimationP2P, BadgeAnimationCommunity, BadgeAnimationSingularity:
		return true
	}
	return false
}

// Level maps a FOMO score range to a named evolution tier.
type Level struct {
	bun.BaseModel `bun:"table:evolution_levels,alias:el"`

	ID                 uuid.UUID      `bun:",pk,type:uuid" json:"id"`
	Tier               i18n.Text      `bun:"embed:rank_" json:"rank"`
	Description        i18n.Text      `bun:"embed:description_" json:"description"`
	FomoScoreMin       int            `bun:"fomo_score_min,notnull" json:"fomo_score_min"`
	FomoScoreMax       int            `bun:"fomo_score_max,notnull" json:"fomo_score_max"`
	NextLevel          string         `bun:"next_level" json:"next_level,omitempty"`
	AnimationType      LevelAnimation `bun:"animation_type,notnull" json:"animation_type"`
	AnimationSpeed     float64        `bun:"animation_speed,notnull,default:1" json:"animation_speed"`
	AnimationIntensity float64        `bun:"animation_intensity,notnull,default:1" json:"animation_intensity"`
	GradientFrom       string         `bun:"gradient_from" json:"gradient_from,omitempty"`
	GradientTo         string         `bun:"gradient_to" json:"gradient_to,omitempty"`
	Position           int            `bun:"position,notnull,default:0" json:"position"`
	CreatedAt          time.Time      `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt          time.Time      `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

func (l *Level) RankID() uuid.UUID { return l.ID }
func (l *Level) Rank() int         { return l.Position }
func (l *Level) RankedAt() time.Time { return l.CreatedAt }

// Badge is an achievement unlocked at an XP threshold.
type Badge struct {
	bun.BaseModel `bun:"table:evolution_badges,alias:eb"`

	ID            uuid.UUID      `bun:",pk,type:uuid" json:"id"`
	Name          i18n.Text      `bun:"embed:name_" json:"name"`
	Description   i18n.Text      `bun:"embed:description_" json:"description"`
	XPRequirement int            `bun:"xp_requirement,notnull,default:0" json:"xp_requirement"`
	Condition     string         `bun:"condition" json:"condition,omitempty"`
	AnimationType BadgeAnimation `bun:"animation_type,notnull" json:"animation_type"`
	GradientFrom  string         `bun:"gradient_from" json:"gradient_from,omitempty"`
	GradientTo    string         `bun:"gradient_to" json:"gradient_to,omitempty"`
	Position      int            `bun:"position,notnull,default:0" json:"position"`
	CreatedAt     time.Time      `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt     time.Time      `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

func (b *Badge) RankID() uuid.UUID { return b.ID }
func (b *Badge) Rank() int         { return b.Position }
func (b *Badge) RankedAt() time.Time { return b.CreatedAt }
