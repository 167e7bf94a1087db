package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/fomolabs/fomo-cms/internal/analytics"
	"github.com/fomolabs/fomo-cms/pkg/testsupport"
)

func TestEventRepository_WithBun(t *testing.T) {
	ctx := context.Background()

	sqlDB, err := testsupport.NewSQLiteMemoryDB()
	if err != nil {
		t.Fatalf("new sqlite db: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	bunDB := bun.NewDB(sqlDB, sqlitedialect.New())
	bunDB.SetMaxOpenConns(1)

	if _, err := bunDB.NewCreateTable().Model((*analytics.Event)(nil)).IfNotExists().Exec(ctx); err != nil {
		t.Fatalf("create table: %v", err)
	}

	repo := analytics.NewBunEventRepository(bunDB)
	svc := analytics.NewService(repo)

	var inputs []analytics.TrackInput
	testsupport.LoadJSONFixture(t, "events.json", &inputs)

	for i, input := range inputs {
		if _, err := svc.Track(ctx, input); err != nil {
			t.Fatalf("track event %d: %v", i, err)
		}
	}

	events, err := repo.ListSince(ctx, time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events) != len(inputs) {
		t.Fatalf("expected %d stored events, got %d", len(inputs), len(events))
	}
	returning := 0
	for _, event := range events {
		if event.SessionID == "sess-a" && event.IsReturning {
			if event.IsNewVisitor {
				t.Fatalf("returning event %s stored as new visitor", event.ID)
			}
			returning++
		}
	}
	if returning != 2 {
		t.Fatalf("expected 2 returning events for sess-a, got %d", returning)
	}

	stats, err := svc.Stats(ctx, 30)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.PageViews != 3 {
		t.Fatalf("expected 3 pageviews, got %d", stats.PageViews)
	}
	if stats.UniqueSessions != 2 {
		t.Fatalf("expected 2 unique sessions, got %d", stats.UniqueSessions)
	}
	if stats.ButtonClicks != 1 {
		t.Fatalf("expected 1 click, got %d", stats.ButtonClicks)
	}
	if stats.NewVisitors != 2 || stats.ReturningVisitors != 1 {
		t.Fatalf("expected 2 new / 1 returning pageviews, got %d / %d",
			stats.NewVisitors, stats.ReturningVisitors)
	}
	if stats.MobileVisitors != 1 {
		t.Fatalf("expected 1 mobile event, got %d", stats.MobileVisitors)
	}
}
