// Package storage owns schema creation and first-boot seeding for the
// SQLite-backed deployment.
package storage

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/fomolabs/fomo-cms/internal/analytics"
	"github.com/fomolabs/fomo-cms/internal/cards"
	"github.com/fomolabs/fomo-cms/internal/evolution"
	"github.com/fomolabs/fomo-cms/internal/faq"
	"github.com/fomolabs/fomo-cms/internal/hero"
	"github.com/fomolabs/fomo-cms/internal/logging"
	"github.com/fomolabs/fomo-cms/internal/navigation"
	"github.com/fomolabs/fomo-cms/internal/partners"
	"github.com/fomolabs/fomo-cms/internal/roadmap"
	"github.com/fomolabs/fomo-cms/internal/sections"
	"github.com/fomolabs/fomo-cms/internal/team"
	"github.com/fomolabs/fomo-cms/pkg/interfaces"
)

// EnsureSchema creates every table the services depend on. Creation is
// idempotent so the call is safe on every boot.
func EnsureSchema(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*cards.Card)(nil),
		(*team.Member)(nil),
		(*partners.Partner)(nil),
		(*faq.Item)(nil),
		(*roadmap.Task)(nil),
		(*evolution.Level)(nil),
		(*evolution.Badge)(nil),
		(*hero.Button)(nil),
		(*navigation.Item)(nil),
		(*sections.Record)(nil),
		(*analytics.Event)(nil),
	}
	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("storage: create table %T: %w", model, err)
		}
	}
	return nil
}

// SeedRepositories collects the stores that receive first-boot content.
type SeedRepositories struct {
	Navigation navigation.Repository
	Hero       hero.Repository
	Partners   partners.Repository
	Levels     evolution.LevelRepository
	Badges     evolution.BadgeRepository
}

// SeedOption configures seeding behaviour.
type SeedOption func(*seeder)

func WithLogger(logger interfaces.Logger) SeedOption {
	return func(s *seeder) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type seeder struct {
	repos  SeedRepositories
	logger interfaces.Logger
}

// Seed inserts the default content into every empty collection. Collections
// that already hold rows are left alone, so operator edits survive restarts.
// Settings documents are not seeded here; the sections service persists its
// defaults lazily on first read.
func Seed(ctx context.Context, repos SeedRepositories, opts ...SeedOption) error {
	s := &seeder{repos: repos, logger: logging.NoOp()}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.seedNavigation(ctx); err != nil {
		return err
	}
	if err := s.seedHeroButtons(ctx); err != nil {
		return err
	}
	if err := s.seedPartners(ctx); err != nil {
		return err
	}
	if err := s.seedEvolution(ctx); err != nil {
		return err
	}
	return nil
}

func (s *seeder) seedPartners(ctx context.Context) error {
	if s.repos.Partners == nil {
		return nil
	}
	existing, err := s.repos.Partners.List(ctx)
	if err != nil {
		return fmt.Errorf("storage: list partners: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}
	grid := partners.DefaultPartners()
	for _, partner := range grid {
		if _, err := s.repos.Partners.Create(ctx, partner); err != nil {
			return fmt.Errorf("storage: seed partner %q: %w", partner.Name.EN, err)
		}
	}
	s.logger.Info("seeded default partners", "partners", len(grid))
	return nil
}

func (s *seeder) seedNavigation(ctx context.Context) error {
	if s.repos.Navigation == nil {
		return nil
	}
	existing, err := s.repos.Navigation.List(ctx)
	if err != nil {
		return fmt.Errorf("storage: list navigation items: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}
	items := navigation.DefaultItems()
	for _, item := range items {
		if _, err := s.repos.Navigation.Create(ctx, item); err != nil {
			return fmt.Errorf("storage: seed navigation item %q: %w", item.Key, err)
		}
	}
	s.logger.Info("seeded default navigation", "items", len(items))
	return nil
}

func (s *seeder) seedHeroButtons(ctx context.Context) error {
	if s.repos.Hero == nil {
		return nil
	}
	existing, err := s.repos.Hero.List(ctx)
	if err != nil {
		return fmt.Errorf("storage: list hero buttons: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}
	buttons := hero.DefaultButtons()
	for _, button := range buttons {
		if _, err := s.repos.Hero.Create(ctx, button); err != nil {
			return fmt.Errorf("storage: seed hero button %q: %w", button.Label, err)
		}
	}
	s.logger.Info("seeded default hero buttons", "buttons", len(buttons))
	return nil
}

func (s *seeder) seedEvolution(ctx context.Context) error {
	if s.repos.Levels != nil {
		existing, err := s.repos.Levels.List(ctx)
		if err != nil {
			return fmt.Errorf("storage: list evolution levels: %w", err)
		}
		if len(existing) == 0 {
			levels := evolution.DefaultLevels()
			for _, level := range levels {
				if _, err := s.repos.Levels.Create(ctx, level); err != nil {
					return fmt.Errorf("storage: seed evolution level: %w", err)
				}
			}
			s.logger.Info("seeded default evolution levels", "levels", len(levels))
		}
	}

	if s.repos.Badges != nil {
		existing, err := s.repos.Badges.List(ctx)
		if err != nil {
			return fmt.Errorf("storage: list evolution badges: %w", err)
		}
		if len(existing) == 0 {
			badges := evolution.DefaultBadges()
			for _, badge := range badges {
				if _, err := s.repos.Badges.Create(ctx, badge); err != nil {
					return fmt.Errorf("storage: seed evolution badge: %w", err)
				}
			}
			s.logger.Info("seeded default evolution badges", "badges", len(badges))
		}
	}
	return nil
}
