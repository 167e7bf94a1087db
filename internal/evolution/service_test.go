package evolution

import (
	"context"
	"errors"
	"testing"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/fomolabs/fomo-cms/internal/i18n"
	"github.com/fomolabs/fomo-cms/internal/ordering"
)

func newEvolutionService() Service {
	return NewService(NewMemoryLevelRepository(), NewMemoryBadgeRepository())
}

func TestService_CreateLevel_RejectsInvertedRange(t *testing.T) {
	svc := newEvolutionService()

	_, err := svc.CreateLevel(context.Background(), CreateLevelInput{
		Tier:         i18n.Text{EN: "Stellar Awakening"},
		FomoScoreMin: 500,
		FomoScoreMax: 100,
	})
	var verrs ozzo.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation errors, got %v", err)
	}
	if _, ok := verrs["fomo_score_min"]; !ok {
		t.Fatalf("expected score range issue, got %v", verrs)
	}
}

func TestService_CreateLevel_DefaultsAnimation(t *testing.T) {
	svc := newEvolutionService()

	level, err := svc.CreateLevel(context.Background(), CreateLevelInput{
		Tier:         i18n.Text{EN: "Stellar Awakening"},
		FomoScoreMin: 0,
		FomoScoreMax: 199,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if level.AnimationType != LevelAnimationStellar {
		t.Fatalf("expected default animation, got %q", level.AnimationType)
	}
	if level.AnimationSpeed != 1 || level.AnimationIntensity != 1 {
		t.Fatalf("expected default animation tuning, got %v/%v", level.AnimationSpeed, level.AnimationIntensity)
	}
}

func TestService_CreateBadge_RejectsNegativeXP(t *testing.T) {
	svc := newEvolutionService()

	_, err := svc.CreateBadge(context.Background(), CreateBadgeInput{
		Name:          i18n.Text{EN: "XP Pioneer"},
		XPRequirement: -1,
	})
	var verrs ozzo.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation errors, got %v", err)
	}
	if _, ok := verrs["xp_requirement"]; !ok {
		t.Fatalf("expected xp issue, got %v", verrs)
	}
}

func TestService_CreateBadge_RejectsLevelAnimationKey(t *testing.T) {
	svc := newEvolutionService()

	// Level and badge registries are separate enumerations.
	_, err := svc.CreateBadge(context.Background(), CreateBadgeInput{
		Name:          i18n.Text{EN: "XP Pioneer"},
		AnimationType: BadgeAnimation("stellar"),
	})
	if err == nil {
		t.Fatal("expected level animation key to be rejected for badges")
	}
}

func TestService_ReorderBadges_DensePermutation(t *testing.T) {
	repo := NewMemoryBadgeRepository()
	svc := NewService(NewMemoryLevelRepository(), repo)

	names := []string{"pioneer", "streak", "maker"}
	created := make([]*Badge, 0, len(names))
	for _, name := range names {
		badge, err := svc.CreateBadge(context.Background(), CreateBadgeInput{
			Name: i18n.NewText(name, name),
		})
		if err != nil {
			t.Fatalf("create badge: %v", err)
		}
		created = append(created, badge)
	}

	got, err := svc.ReorderBadges(context.Background(), []ordering.Update{
		{ID: created[2].ID, Order: 0},
		{ID: created[0].ID, Order: 5},
		{ID: created[1].ID, Order: 3},
	})
	if err != nil {
		t.Fatalf("reorder: %v", err)
	}
	for i, badge := range got {
		if badge.Position != i {
			t.Fatalf("index %d: expected dense position %d, got %d", i, i, badge.Position)
		}
	}
	if got[0].ID != created[2].ID {
		t.Fatal("unexpected badge order")
	}
}

func TestDefaultSeeds(t *testing.T) {
	levels := DefaultLevels()
	if len(levels) != 6 {
		t.Fatalf("expected 6 seed levels, got %d", len(levels))
	}
	for i, level := range levels {
		if level.Position != i {
			t.Fatalf("level %d: expected position %d, got %d", i, i, level.Position)
		}
		if level.FomoScoreMin > level.FomoScoreMax {
			t.Fatalf("level %d: inverted score range", i)
		}
		if !level.AnimationType.Valid() {
			t.Fatalf("level %d: invalid animation %q", i, level.AnimationType)
		}
		if i > 0 && levels[i-1].FomoScoreMax >= level.FomoScoreMin {
			t.Fatalf("level %d: score range overlaps previous", i)
		}
	}

	badges := DefaultBadges()
	if len(badges) != 9 {
		t.Fatalf("expected 9 seed badges, got %d", len(badges))
	}
	for i, badge := range badges {
		if badge.Position != i {
			t.Fatalf("badge %d: expected position %d, got %d", i, i, badge.Position)
		}
		if !badge.AnimationType.Valid() {
			t.Fatalf("badge %d: invalid animation %q", i, badge.AnimationType)
		}
		if i > 0 && badges[i-1].XPRequirement >= badge.XPRequirement {
			t.Fatalf("badge %d: xp requirements not ascending", i)
		}
	}
}
