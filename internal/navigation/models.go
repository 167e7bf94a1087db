package navigation

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/fomolabs/fomo-cms/internal/i18n"
)

// Item is a single entry of the public navigation menu. The Key is a stable
// machine identifier ("about", "roadmap") used by the frontend for anchors
// and scroll targets, while Label carries the visible copy per language.
type Item struct {
	bun.BaseModel `bun:"table:navigation_items,alias:ni"`

	ID        uuid.UUID `bun:",pk,type:uuid" json:"id"`
	Key       string    `bun:"key,notnull,unique" json:"key"`
	Label     i18n.Text `bun:"embed:label_" json:"label"`
	Href      string    `bun:"href,notnull" json:"href"`
	IsActive  bool      `bun:"is_active,notnull" json:"is_active"`
	Position  int       `bun:"position,notnull,default:0" json:"position"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

func (i *Item) RankID() uuid.UUID { return i.ID }
func (i *Item) Rank() int         { return i.Position }
func (i *Item) RankedAt() time.Time { return i.CreatedAt }
