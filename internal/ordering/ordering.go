package ordering

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// ErrBadSubmission marks reorder and move requests that do not describe a
// legal permutation of the collection. Callers can match it with errors.Is.
var ErrBadSubmission = errors.New("bad ordering submission")

// Direction identifies a single-step move inside an ordered collection.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// Valid reports whether the direction is one of the supported values.
func (d Direction) Valid() bool {
	return d == DirectionUp || d == DirectionDown
}

// Ranked is implemented by records that live in an ordered collection.
type Ranked interface {
	RankID() uuid.UUID
	Rank() int
}

// Update assigns a new position to one record.
type Update struct {
	ID    uuid.UUID `json:"id"`
	Order int       `json:"order"`
}

// Sort orders items by rank. Ties keep creation order for records that
// carry a creation timestamp, falling back to id so reads stay
// deterministic even when stored positions collide.
func Sort[T Ranked](items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Rank() != items[j].Rank() {
			return items[i].Rank() < items[j].Rank()
		}
		ci, iok := any(items[i]).(interface{ RankedAt() time.Time })
		cj, jok := any(items[j]).(interface{ RankedAt() time.Time })
		if iok && jok && !ci.RankedAt().Equal(cj.RankedAt()) {
			return ci.RankedAt().Before(cj.RankedAt())
		}
		return items[i].RankID().String() < items[j].RankID().String()
	})
}

// Next returns the position a newly appended record should take.
func Next[T Ranked](items []T) int {
	return len(items)
}

// Plan validates a full-set reorder submission against the current items and
// returns normalized positions covering the whole collection. Submissions must
// reference every item exactly once. Normalized positions follow the submitted
// relative order and are compacted to the 0..n-1 range.
func Plan[T Ranked](resource string, items []T, updates []Update) ([]Update, error) {
	if len(updates) != len(items) {
		return nil, fmt.Errorf("%w: %s requires %d items, got %d", ErrBadSubmission, resource, len(items), len(updates))
	}

	known := make(map[uuid.UUID]struct{}, len(items))
	for _, item := range items {
		known[item.RankID()] = struct{}{}
	}

	seen := make(map[uuid.UUID]struct{}, len(updates))
	for _, upd := range updates {
		if upd.ID == uuid.Nil {
			return nil, fmt.Errorf("%w: %s update is missing an id", ErrBadSubmission, resource)
		}
		if _, dup := seen[upd.ID]; dup {
			return nil, fmt.Errorf("%w: %s has duplicate entry %s", ErrBadSubmission, resource, upd.ID)
		}
		seen[upd.ID] = struct{}{}
		if _, ok := known[upd.ID]; !ok {
			return nil, fmt.Errorf("%w: %s references unknown item %s", ErrBadSubmission, resource, upd.ID)
		}
	}

	normalized := make([]Update, len(updates))
	copy(normalized, updates)
	sort.SliceStable(normalized, func(i, j int) bool {
		return normalized[i].Order < normalized[j].Order
	})
	for i := range normalized {
		normalized[i].Order = i
	}
	return normalized, nil
}

// Move produces the full-set updates for shifting one item a single step in
// the given direction. A move past either boundary returns nil, signalling
// that nothing needs to be written.
func Move[T Ranked](resource string, items []T, id uuid.UUID, dir Direction) ([]Update, error) {
	if !dir.Valid() {
		return nil, fmt.Errorf("%w: %s got unknown direction %q", ErrBadSubmission, resource, dir)
	}

	ordered := make([]T, len(items))
	copy(ordered, items)
	Sort(ordered)

	idx := -1
	for i, item := range ordered {
		if item.RankID() == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s references unknown item %s", ErrBadSubmission, resource, id)
	}

	swap := idx - 1
	if dir == DirectionDown {
		swap = idx + 1
	}
	if swap < 0 || swap >= len(ordered) {
		return nil, nil
	}

	ordered[idx], ordered[swap] = ordered[swap], ordered[idx]
	updates := make([]Update, len(ordered))
	for i, item := range ordered {
		updates[i] = Update{ID: item.RankID(), Order: i}
	}
	return updates, nil
}

// Changed reports whether any update differs from the stored positions. It
// lets callers skip the bulk write entirely when a submission is already in
// effect, without shrinking the full-set payload once a write is needed.
func Changed[T Ranked](items []T, updates []Update) bool {
	current := make(map[uuid.UUID]int, len(items))
	for _, item := range items {
		current[item.RankID()] = item.Rank()
	}
	for _, upd := range updates {
		if pos, ok := current[upd.ID]; !ok || pos != upd.Order {
			return true
		}
	}
	return false
}
