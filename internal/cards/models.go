package cards

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/fomolabs/fomo-cms/internal/i18n"
)

// Card is one entry in the landing page drawer strip. Cards render in
// position order and link out to a product surface.
type Card struct {
	bun.BaseModel `bun:"table:drawer_cards,alias:dc"`

	ID        uuid.UUID `bun:",pk,type:uuid" json:"id"`
	Title     i18n.Text `bun:"embed:title_" json:"title"`
	Link      string    `bun:"link,notnull" json:"link"`
	ImageURL  string    `bun:"image_url" json:"image_url,omitempty"`
	Position  int       `bun:"position,notnull,default:0" json:"position"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

func (c *Card) RankID() uuid.UUID { return c.ID }
func (c *Card) Rank() int         { return c.Position }
func (c *Card) RankedAt() time.Time { return c.CreatedAt }
