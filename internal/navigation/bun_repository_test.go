package navigation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/fomolabs/fomo-cms/internal/i18n"
	"github.com/fomolabs/fomo-cms/internal/navigation"
	"github.com/fomolabs/fomo-cms/pkg/testsupport"
)

func TestItemRepository_WithBunAndCache(t *testing.T) {
	ctx := context.Background()

	sqlDB, err := testsupport.NewSQLiteMemoryDB()
	if err != nil {
		t.Fatalf("new sqlite db: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	bunDB := bun.NewDB(sqlDB, sqlitedialect.New())
	bunDB.SetMaxOpenConns(1)

	if _, err := bunDB.NewCreateTable().Model((*navigation.Item)(nil)).IfNotExists().Exec(ctx); err != nil {
		t.Fatalf("create table: %v", err)
	}

	cacheCfg := repocache.DefaultConfig()
	cacheCfg.TTL = time.Minute
	cacheSvc, err := repocache.NewCacheService(cacheCfg)
	if err != nil {
		t.Fatalf("cache service: %v", err)
	}

	repo := navigation.NewBunItemRepositoryWithCache(bunDB, cacheSvc, repocache.NewDefaultKeySerializer())
	svc := navigation.NewService(repo)

	about, err := svc.CreateItem(ctx, navigation.CreateItemInput{
		Key:   "about",
		Label: i18n.NewText("About", "О нас"),
		Href:  "#about",
	})
	if err != nil {
		t.Fatalf("create item: %v", err)
	}

	inactive := false
	if _, err := svc.CreateItem(ctx, navigation.CreateItemInput{
		Key:      "archive",
		Label:    i18n.NewText("Archive", ""),
		Href:     "#archive",
		IsActive: &inactive,
	}); err != nil {
		t.Fatalf("create inactive item: %v", err)
	}

	fetched, err := repo.GetByKey(ctx, "about")
	if err != nil {
		t.Fatalf("get by key: %v", err)
	}
	if fetched.ID != about.ID {
		t.Fatalf("expected item %s got %s", about.ID, fetched.ID)
	}

	active, err := svc.ListActiveItems(ctx)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 1 || active[0].Key != "about" {
		t.Fatalf("expected only the about item active, got %d items", len(active))
	}

	if err := svc.DeleteItem(ctx, about.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	var notFound *navigation.NotFoundError
	if _, err := repo.GetByKey(ctx, "about"); !errors.As(err, &notFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}
