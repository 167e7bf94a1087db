package ordering

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

type rankedStub struct {
	id   uuid.UUID
	rank int
}

func (s rankedStub) RankID() uuid.UUID { return s.id }
func (s rankedStub) Rank() int         { return s.rank }

func stubs(ranks ...int) []rankedStub {
	items := make([]rankedStub, len(ranks))
	for i, r := range ranks {
		items[i] = rankedStub{id: uuid.New(), rank: r}
	}
	return items
}

type timedStub struct {
	rankedStub
	created time.Time
}

func (s timedStub) RankedAt() time.Time { return s.created }

func TestSortBreaksTiesByCreationTime(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	older := timedStub{
		rankedStub: rankedStub{id: uuid.MustParse("ffffffff-ffff-ffff-ffff-ffffffffffff"), rank: 5},
		created:    base,
	}
	newer := timedStub{
		rankedStub: rankedStub{id: uuid.MustParse("00000000-0000-0000-0000-000000000001"), rank: 5},
		created:    base.Add(time.Minute),
	}

	items := []timedStub{newer, older}
	Sort(items)
	if items[0].id != older.id {
		t.Fatalf("expected the older record first on a rank tie, got %s", items[0].id)
	}
}

func TestPlanNormalizesSparsePositions(t *testing.T) {
	items := stubs(0, 1, 2)
	updates := []Update{
		{ID: items[2].id, Order: 5},
		{ID: items[0].id, Order: -3},
		{ID: items[1].id, Order: 100},
	}

	got, err := Plan("cards", items, updates)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected full set, got %d", len(got))
	}
	wantOrder := []uuid.UUID{items[0].id, items[2].id, items[1].id}
	for i, upd := range got {
		if upd.Order != i {
			t.Fatalf("position %d not compacted: got %d", i, upd.Order)
		}
		if upd.ID != wantOrder[i] {
			t.Fatalf("position %d: expected %s, got %s", i, wantOrder[i], upd.ID)
		}
	}
}

func TestPlanRejectsPartialSubmission(t *testing.T) {
	items := stubs(0, 1, 2)
	_, err := Plan("cards", items, []Update{{ID: items[0].id, Order: 0}})
	if err == nil {
		t.Fatal("expected error for partial submission")
	}
	if !strings.Contains(err.Error(), "requires 3 items, got 1") {
		t.Fatalf("unexpected error: %v", err)
	}
	if !errors.Is(err, ErrBadSubmission) {
		t.Fatalf("expected ErrBadSubmission, got %v", err)
	}
}

func TestPlanRejectsDuplicatesAndStrangers(t *testing.T) {
	items := stubs(0, 1)

	_, err := Plan("team", items, []Update{
		{ID: items[0].id, Order: 0},
		{ID: items[0].id, Order: 1},
	})
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("expected duplicate error, got %v", err)
	}

	_, err = Plan("team", items, []Update{
		{ID: items[0].id, Order: 0},
		{ID: uuid.New(), Order: 1},
	})
	if err == nil || !strings.Contains(err.Error(), "unknown item") {
		t.Fatalf("expected unknown item error, got %v", err)
	}
}

func TestMoveSwapsNeighbours(t *testing.T) {
	items := stubs(0, 1, 2)

	updates, err := Move("team", items, items[1].id, DirectionUp)
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	want := []Update{
		{ID: items[1].id, Order: 0},
		{ID: items[0].id, Order: 1},
		{ID: items[2].id, Order: 2},
	}
	if len(updates) != len(want) {
		t.Fatalf("expected %d updates, got %d", len(want), len(updates))
	}
	for i := range want {
		if updates[i] != want[i] {
			t.Fatalf("update %d: expected %+v, got %+v", i, want[i], updates[i])
		}
	}
}

func TestMoveAtBoundaryIsNoOp(t *testing.T) {
	items := stubs(0, 1, 2)

	updates, err := Move("faq", items, items[0].id, DirectionUp)
	if err != nil {
		t.Fatalf("move up at top: %v", err)
	}
	if updates != nil {
		t.Fatalf("expected no-op at top boundary, got %d updates", len(updates))
	}

	updates, err = Move("faq", items, items[2].id, DirectionDown)
	if err != nil {
		t.Fatalf("move down at bottom: %v", err)
	}
	if updates != nil {
		t.Fatalf("expected no-op at bottom boundary, got %d updates", len(updates))
	}
}

func TestMoveUnknownItem(t *testing.T) {
	items := stubs(0, 1)
	if _, err := Move("faq", items, uuid.New(), DirectionDown); err == nil {
		t.Fatal("expected error for unknown item")
	}
	if _, err := Move("faq", items, items[0].id, Direction("sideways")); err == nil {
		t.Fatal("expected error for unknown direction")
	}
}

func TestChanged(t *testing.T) {
	items := stubs(0, 1, 2)

	same := []Update{
		{ID: items[0].id, Order: 0},
		{ID: items[1].id, Order: 1},
		{ID: items[2].id, Order: 2},
	}
	if Changed(items, same) {
		t.Fatal("identical submission reported as changed")
	}

	swapped := []Update{
		{ID: items[0].id, Order: 0},
		{ID: items[1].id, Order: 2},
		{ID: items[2].id, Order: 1},
	}
	if !Changed(items, swapped) {
		t.Fatal("swapped submission not reported as changed")
	}
}
