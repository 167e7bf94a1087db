package faq

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Item is one question/answer pair. FAQ copy is intentionally not localized.
type Item struct {
	bun.BaseModel `bun:"table:faq_items,alias:fq"`

	ID        uuid.UUID `bun:",pk,type:uuid" json:"id"`
	Question  string    `bun:"question,notnull" json:"question"`
	Answer    string    `bun:"answer,notnull" json:"answer"`
	Position  int       `bun:"position,notnull,default:0" json:"position"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

func (i *Item) RankID() uuid.UUID { return i.ID }
func (i *Item) Rank() int         { return i.Position }
func (i *Item) RankedAt() time.Time { return i.CreatedAt }
