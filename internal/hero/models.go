package hero

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ButtonStyle selects the visual treatment of a hero call-to-action.
type ButtonStyle string

const (
	StylePrimary   ButtonStyle = "primary"
	StyleSecondary ButtonStyle = "secondary"
	StyleOutline   ButtonStyle = "outline"
)

// Valid reports whether the style is one of the supported values.
func (s ButtonStyle) Valid() bool {
	return s == StylePrimary || s == StyleSecondary || s == StyleOutline
}

// ParseButtonStyle normalizes a raw style, defaulting to primary.
func ParseButtonStyle(raw string) ButtonStyle {
	s := ButtonStyle(strings.ToLower(strings.TrimSpace(raw)))
	if s.Valid() {
		return s
	}
	return StylePrimary
}

// Button is one call-to-action in the hero section. Only active buttons
// render publicly, and the number of active buttons is capped.
type Button struct {
	bun.BaseModel `bun:"table:hero_buttons,alias:hb"`

	ID        uuid.UUID   `bun:",pk,type:uuid" json:"id"`
	Label     string      `bun:"label,notnull" json:"label"`
	URL       string      `bun:"url,notnull" json:"url"`
	Style     ButtonStyle `bun:"style,notnull,default:'primary'" json:"style"`
	IsActive  bool        `bun:"is_active,notnull" json:"is_active"`
	Position  int         `bun:"position,notnull,default:0" json:"position"`
	CreatedAt time.Time   `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time   `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

func (b *Button) RankID() uuid.UUID { return b.ID }
func (b *Button) Rank() int         { return b.Position }
func (b *Button) RankedAt() time.Time { return b.CreatedAt }
