package evolution

import (
	"github.com/google/uuid"

	"github.com/fomolabs/fomo-cms/internal/i18n"
)

// DefaultLevels returns the seed tiers used when the levels table is empty.
func DefaultLevels() []*Level {
	return []*Level{
		{
			ID:                 uuid.New(),
			Tier:               i18n.Mirror(i18n.Text{EN: "Stellar Awakening"}),
			Description:        i18n.Mirror(i18n.Text{EN: "You've taken your first steps into the FOMO universe."}),
			FomoScoreMin:       0,
			FomoScoreMax:       199,
			NextLevel:          "Cosmic Explorer (200)",
			AnimationType:      LevelAnimationStellar,
			AnimationSpeed:     1,
			AnimationIntensity: 1,
			GradientFrom:       "#64748b",
			GradientTo:         "#475569",
			Position:           0,
		},
		{
			ID:                 uuid.New(),
			Tier:               i18n.Mirror(i18n.Text{EN: "Cosmic Explorer"}),
			Description:        i18n.Mirror(i18n.Text{EN: "You're expanding your presence and exploring the ecosystem."}),
			FomoScoreMin:       200,
			FomoScoreMax:       399,
			NextLevel:          "Galactic Navigator (400)",
			AnimationType:      LevelAnimationCosmic,
			AnimationSpeed:     1,
			AnimationIntensity: 1,
			GradientFrom:       "#3b82f6",
			GradientTo:         "#2563eb",
			Position:           1,
		},
		{
			ID:                 uuid.New(),
			Tier:               i18n.Mirror(i18n.Text{EN: "Galactic Navigator"}),
			Description:        i18n.Mirror(i18n.Text{EN: "You're becoming a reliable contributor in the community."}),
			FomoScoreMin:       400,
			FomoScoreMax:       599,
			NextLevel:          "Celestial Master (600)",
			AnimationType:      LevelAnimationGalactic,
			AnimationSpeed:     1,
			AnimationIntensity: 1,
			GradientFrom:       "#a855f7",
			GradientTo:         "#7c3aed",
			Position:           2,
		},
		{
			ID:                 uuid.New(),
			Tier:               i18n.Mirror(i18n.Text{EN: "Celestial Master"}),
			Description:        i18n.Mirror(i18n.Text{EN: "Your impact is felt across the galaxy. Others trust your moves."}),
			FomoScoreMin:       600,
			FomoScoreMax:       799,
			NextLevel:          "Astral Sage (800)",
			AnimationType:      LevelAnimationCelestial,
			AnimationSpeed:     1,
			AnimationIntensity: 1,
			GradientFrom:       "#f59e0b",
			GradientTo:         "#d97706",
			Position:           3,
		},
		{
			ID:                 uuid.New(),
			Tier:               i18n.Mirror(i18n.Text{EN: "Astral Sage"}),
			Description:        i18n.Mirror(i18n.Text{EN: "You are now a recognized guide in the FOMO cosmos."}),
			FomoScoreMin:       800,
			FomoScoreMax:       899,
			NextLevel:          "Universal Enlightenment (900)",
			AnimationType:      LevelAnimationAstral,
			AnimationSpeed:     1,
			AnimationIntensity: 1,
			GradientFrom:       "#ec4899",
			GradientTo:         "#db2777",
			Position:           4,
		},
		{
			ID:                 uuid.New(),
			Tier:               i18n.Mirror(i18n.Text{EN: "Universal Enlightenment"}),
			Description:        i18n.Mirror(i18n.Text{EN: "You've reached the ultimate level. A symbol of cosmic influence."}),
			FomoScoreMin:       900,
			FomoScoreMax:       1000,
			NextLevel:          "Max level achieved!",
			AnimationType:      LevelAnimationUniversal,
			AnimationSpeed:     1,
			AnimationIntensity: 1,
			GradientFrom:       "#10b981",
			GradientTo:         "#059669",
			Position:           5,
		},
	}
}

// DefaultBadges returns the seed achievements used when the badges table is
// empty.
func DefaultBadges() []*Badge {
	return []*Badge{
		{
			ID:            uuid.New(),
			Name:          i18n.Mirror(i18n.Text{EN: "XP Pioneer"}),
			Description:   i18n.Mirror(i18n.Text{EN: "You were among the first to shape the platform — your journey began early and boldly"}),
			XPRequirement: 1000,
			Condition:     "staying active: predictions, OTC/P2P deals, insights, and community contributions",
			AnimationType: BadgeAnimationPioneer,
			GradientFrom:  "#3b82f6",
			GradientTo:    "#06b6d4",
			Position:      0,
		},
		{
			ID:            uuid.New(),
			Name:          i18n.Mirror(i18n.Text{EN: "Onboarding Master"}),
			Description:   i18n.Mirror(i18n.Text{EN: "Your setup is flawless — profile, wallet, alerts, and watchlist are all on point"}),
			XPRequirement: 2500,
			Condition:     "complete all onboarding steps: profile, wallet, watchlist, and alerts",
			AnimationType: BadgeAnimationOnboarding,
			GradientFrom:  "#f59e0b",
			GradientTo:    "#d97706",
			Position:      1,
		},
		{
			ID:            uuid.New(),
			Name:          i18n.Mirror(i18n.Text{EN: "Project Reviewer"}),
			Description:   i18n.Mirror(i18n.Text{EN: "You're making waves in crypto research — your deep-dive reports help others"}),
			XPRequirement: 5000,
			Condition:     "publishing 3+ in-depth crypto project reports",
			AnimationType: BadgeAnimationReviewer,
			GradientFrom:  "#a855f7",
			GradientTo:    "#7c3aed",
			Position:      2,
		},
		{
			ID:            uuid.New(),
			Name:          i18n.Mirror(i18n.Text{EN: "Top Predictor"}),
			Description:   i18n.Mirror(i18n.Text{EN: "Accuracy is your superpower — with over 80% precision, you're a true market sniper"}),
			XPRequirement: 10000,
			Condition:     "maintain ≥80% accuracy across ≥100 predictions",
			AnimationType: BadgeAnimationPredictor,
			GradientFrom:  "#ef4444",
			GradientTo:    "#dc2626",
			Position:      3,
		},
		{
			ID:            uuid.New(),
			Name:          i18n.Mirror(i18n.Text{EN: "Hot Streak"}),
			Description:   i18n.Mirror(i18n.Text{EN: "You're on fire! A streak of winning predictions proves you know how to ride the momentum"}),
			XPRequirement: 15000,
			Condition:     "hit a streak of ≥5 consecutive winning predictions",
			AnimationType: BadgeAnimationStreak,
			GradientFrom:  "#f97316",
			GradientTo:    "#ea580c",
			Position:      4,
		},
		{
			ID:            uuid.New(),
			Name:          i18n.Mirror(i18n.Text{EN: "Market Maker"}),
			Description:   i18n.Mirror(i18n.Text{EN: "You've moved serious volume in OTC trades — your presence matters in the big league"}),
			XPRequirement: 20000,
			Condition:     "complete OTC trades totaling ≥50,000 USDT",
			AnimationType: BadgeAnimationMaker,
			GradientFrom:  "#10b981",
			GradientTo:    "#059669",
			Position:      5,
		},
		{
			ID:            uuid.New(),
			Name:          i18n.Mirror(i18n.Text{EN: "P2P Pro"}),
			Description:   i18n.Mirror(i18n.Text{EN: "Your P2P game is elite — trusted, active, and consistently closing big deals"}),
			XPRequirement: 25000,
			Condition:     "complete P2P trades totaling ≥50,000 USDT",
			AnimationType: BadgeAnimationP2P,
			GradientFrom:  "#6366f1",
			GradientTo:    "#4f46e5",
			Position:      6,
		},
		{
			ID:            uuid.New(),
			Name:          i18n.Mirror(i18n.Text{EN: "Community Star"}),
			Description:   i18n.Mirror(i18n.Text{EN: "The crowd listens when you speak — your contributions have earned trust and applause"}),
			XPRequirement: 35000,
			Condition:     "through 20+ comments/discussions and earn ≥100 likes",
			AnimationType: BadgeAnimationCommunity,
			GradientFrom:  "#ec4899",
			GradientTo:    "#db2777",
			Position:      7,
		},
		{
			ID:            uuid.New(),
			Name:          i18n.Mirror(i18n.Text{EN: "Singularity"}),
			Description:   i18n.Mirror(i18n.Text{EN: "You're one of a kind. All badges unlocked. The singularity=true tag is now forever part of your legacy"}),
			XPRequirement: 100000,
			Condition:     "unlock all 8 previous badges — singularity=true will be permanently linked to your NFT",
			AnimationType: BadgeAnimationSingularity,
			GradientFrom:  "#14b8a6",
			GradientTo:    "#0d9488",
			Position:      8,
		},
	}
}
