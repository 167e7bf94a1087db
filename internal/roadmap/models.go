package roadmap

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/fomolabs/fomo-cms/internal/i18n"
)

// Status tracks how far along a roadmap task is.
type Status string

const (
	StatusDone     Status = "done"
	StatusProgress Status = "progress"
)

// Valid reports whether the status is one of the supported values.
func (s Status) Valid() bool {
	return s == StatusDone || s == StatusProgress
}

// ParseStatus normalizes a raw status, defaulting to progress.
func ParseStatus(raw string) Status {
	if Status(strings.ToLower(strings.TrimSpace(raw))) == StatusDone {
		return StatusDone
	}
	return StatusProgress
}

// Task is one roadmap entry. Category is a free-form label used by the
// public site to group tasks into columns.
type Task struct {
	bun.BaseModel `bun:"table:roadmap_tasks,alias:rt"`

	ID        uuid.UUID `bun:",pk,type:uuid" json:"id"`
	Name      i18n.Text `bun:"embed:name_" json:"name"`
	Status    Status    `bun:"status,notnull,default:'progress'" json:"status"`
	Category  string    `bun:"category" json:"category,omitempty"`
	Position  int       `bun:"position,notnull,default:0" json:"position"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

func (t *Task) RankID() uuid.UUID { return t.ID }
func (t *Task) Rank() int         { return t.Position }
func (t *Task) RankedAt() time.Time { return t.CreatedAt }
