package partners

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/fomolabs/fomo-cms/internal/i18n"
)

// Category partitions partners into independently ordered and paginated
// views on the public site.
type Category string

const (
	CategoryPartners  Category = "partners"
	CategoryMedia     Category = "media"
	CategoryPortfolio Category = "portfolio"
)

// Valid reports whether the category is one of the supported values.
func (c Category) Valid() bool {
	return c == CategoryPartners || c == CategoryMedia || c == CategoryPortfolio
}

// ParseCategory normalizes a raw category, defaulting to partners.
func ParseCategory(raw string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if c.Valid() {
		return c
	}
	return CategoryPartners
}

// Partner is one logo tile in the partners, media, or portfolio grid.
type Partner struct {
	bun.BaseModel `bun:"table:partners,alias:pt"`

	ID          uuid.UUID `bun:",pk,type:uuid" json:"id"`
	Name        i18n.Text `bun:"embed:name_" json:"name"`
	Description i18n.Text `bun:"embed:description_" json:"description"`
	Link        string    `bun:"link" json:"link,omitempty"`
	ImageURL    string    `bun:"image_url" json:"image_url,omitempty"`
	Category    Category  `bun:"category,notnull,default:'partners'" json:"category"`
	Position    int       `bun:"position,notnull,default:0" json:"position"`
	CreatedAt   time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

func (p *Partner) RankID() uuid.UUID { return p.ID }
func (p *Partner) Rank() int         { return p.Position }
func (p *Partner) RankedAt() time.Time { return p.CreatedAt }
