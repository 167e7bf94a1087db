package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/fomolabs/fomo-cms/internal/analytics"
	"github.com/fomolabs/fomo-cms/internal/auth"
	"github.com/fomolabs/fomo-cms/internal/cards"
	"github.com/fomolabs/fomo-cms/internal/evolution"
	"github.com/fomolabs/fomo-cms/internal/faq"
	"github.com/fomolabs/fomo-cms/internal/hero"
	sitehttp "github.com/fomolabs/fomo-cms/internal/http"
	"github.com/fomolabs/fomo-cms/internal/logging"
	"github.com/fomolabs/fomo-cms/internal/logging/gologger"
	"github.com/fomolabs/fomo-cms/internal/navigation"
	"github.com/fomolabs/fomo-cms/internal/partners"
	"github.com/fomolabs/fomo-cms/internal/roadmap"
	"github.com/fomolabs/fomo-cms/internal/runtimeconfig"
	"github.com/fomolabs/fomo-cms/internal/sections"
	"github.com/fomolabs/fomo-cms/internal/site"
	"github.com/fomolabs/fomo-cms/internal/storage"
	"github.com/fomolabs/fomo-cms/internal/team"
	"github.com/fomolabs/fomo-cms/internal/uploads"
	"github.com/fomolabs/fomo-cms/pkg/interfaces"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func run() error {
	cfg, err := runtimeconfig.Load()
	if err != nil {
		return err
	}

	provider, err := gologger.NewProvider(gologger.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.AddSource,
	})
	if err != nil {
		return err
	}
	logger := logging.ModuleLogger(provider, "server")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sqldb, err := sql.Open("sqlite3", cfg.Storage.DSN)
	if err != nil {
		return err
	}
	db := bun.NewDB(sqldb, sqlitedialect.New())
	defer db.Close()

	if err := storage.EnsureSchema(ctx, db); err != nil {
		return err
	}

	// Read-heavy collections get the caching repository decorator. The rest
	// hit the database directly.
	cacheService, serializer := buildCache(logger)
	cardRepo := cards.NewBunCardRepositoryWithCache(db, cacheService, serializer)
	partnerRepo := partners.NewBunPartnerRepositoryWithCache(db, cacheService, serializer)
	navigationRepo := navigation.NewBunItemRepositoryWithCache(db, cacheService, serializer)
	teamRepo := team.NewBunMemberRepository(db)
	faqRepo := faq.NewBunItemRepository(db)
	roadmapRepo := roadmap.NewBunTaskRepository(db)
	levelRepo := evolution.NewBunLevelRepository(db)
	badgeRepo := evolution.NewBunBadgeRepository(db)
	heroRepo := hero.NewBunButtonRepository(db)
	sectionStore := sections.NewBunStore(db)
	analyticsRepo := analytics.NewBunEventRepository(db)

	if err := storage.Seed(ctx, storage.SeedRepositories{
		Navigation: navigationRepo,
		Hero:       heroRepo,
		Partners:   partnerRepo,
		Levels:     levelRepo,
		Badges:     badgeRepo,
	}, storage.WithLogger(logging.ModuleLogger(provider, "storage"))); err != nil {
		return err
	}

	cardService := cards.NewService(cardRepo, cards.WithLogger(logging.ModuleLogger(provider, "cards")))
	teamService := team.NewService(teamRepo,
		team.WithLogger(logging.ModuleLogger(provider, "team")),
		team.WithDisplayedSocialsLimit(cfg.Limits.MaxDisplayedSocials),
	)
	partnerService := partners.NewService(partnerRepo, partners.WithLogger(logging.ModuleLogger(provider, "partners")))
	faqService := faq.NewService(faqRepo)
	roadmapService := roadmap.NewService(roadmapRepo)
	evolutionService := evolution.NewService(levelRepo, badgeRepo)
	heroService := hero.NewService(heroRepo, hero.WithActiveLimit(cfg.Limits.MaxActiveHeroButtons))
	navigationService := navigation.NewService(navigationRepo)
	sectionService := sections.NewService(sectionStore)
	analyticsService := analytics.NewService(analyticsRepo, analytics.WithLogger(logging.ModuleLogger(provider, "analytics")))

	uploadService, err := uploads.NewService(cfg.Uploads.Dir,
		uploads.WithMaxBytes(cfg.Uploads.MaxBytes),
		uploads.WithLogger(logging.ModuleLogger(provider, "uploads")),
	)
	if err != nil {
		return err
	}

	authService := auth.NewService(cfg.Auth.AdminPassword, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	projector := site.NewProjector(site.Services{
		Navigation: navigationService,
		Sections:   sectionService,
		Hero:       heroService,
		Cards:      cardService,
		Roadmap:    roadmapService,
		Evolution:  evolutionService,
		Team:       teamService,
		Partners:   partnerService,
		FAQ:        faqService,
	},
		site.WithLogger(logging.ModuleLogger(provider, "site")),
		site.WithPartnersPageSize(cfg.Limits.PartnersPageSize),
	)

	mux := http.NewServeMux()

	publicAPI := sitehttp.NewPublicAPI(
		sitehttp.WithPublicBasePath(cfg.Server.BasePath),
		sitehttp.WithPublicLogger(logging.ModuleLogger(provider, "http.public")),
		sitehttp.WithProjector(projector),
		sitehttp.WithTracker(analyticsService),
		sitehttp.WithAuth(authService),
	)
	if err := publicAPI.Register(mux); err != nil {
		return err
	}

	adminMux := http.NewServeMux()
	adminAPI := sitehttp.NewAdminAPI(
		sitehttp.WithAdminBasePath(joinBase(cfg.Server.BasePath, "admin")),
		sitehttp.WithAdminLogger(logging.ModuleLogger(provider, "http.admin")),
		sitehttp.WithCardService(cardService),
		sitehttp.WithTeamService(teamService),
		sitehttp.WithPartnerService(partnerService),
		sitehttp.WithFAQService(faqService),
		sitehttp.WithRoadmapService(roadmapService),
		sitehttp.WithEvolutionService(evolutionService),
		sitehttp.WithHeroService(heroService),
		sitehttp.WithNavigationService(navigationService),
		sitehttp.WithSectionService(sectionService),
		sitehttp.WithAnalyticsService(analyticsService),
		sitehttp.WithUploadService(uploadService),
	)
	if err := adminAPI.Register(adminMux); err != nil {
		return err
	}
	// Login and verify stay on the public surface; everything else under the
	// admin prefix requires a bearer token.
	mux.Handle(joinBase(cfg.Server.BasePath, "admin")+"/", authService.Middleware(adminMux))

	mux.Handle("GET "+uploads.URLPrefix, http.StripPrefix(uploads.URLPrefix, http.FileServer(http.Dir(uploadService.Dir()))))

	handler := corsMiddleware(cfg.Server.CORSOrigins, mux)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Server.Addr, "language", cfg.I18N.DefaultLanguage)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func buildCache(logger interfaces.Logger) (repocache.CacheService, repocache.KeySerializer) {
	service, err := repocache.NewCacheService(repocache.DefaultConfig())
	if err != nil {
		logger.Warn("cache disabled", "error", err)
		return nil, nil
	}
	return service, repocache.NewDefaultKeySerializer()
}

func joinBase(base, suffix string) string {
	trimmed := "/" + strings.Trim(strings.TrimSpace(base), "/")
	if trimmed == "/" {
		return "/" + suffix
	}
	return trimmed + "/" + suffix
}

// corsMiddleware answers preflight requests and stamps the allowed origins.
// A single "*" entry allows any origin.
func corsMiddleware(origins []string, next http.Handler) http.Handler {
	allowAll := len(origins) == 0
	allowed := make(map[string]struct{}, len(origins))
	for _, origin := range origins {
		if origin == "*" {
			allowAll = true
			continue
		}
		allowed[origin] = struct{}{}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			if allowAll {
				w.Header().Set("Access-Control-Allow-Origin", "*")
			} else if _, ok := allowed[origin]; ok {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Vary", "Origin")
			}
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
