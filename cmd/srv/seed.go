package main

import (
	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"github.com/swapapp/backend/internal/domain/progression"
	"github.com/swapapp/backend/internal/entity"
	"github.com/swapapp/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

type tierSeed struct {
	Tiers []struct {
		Name              string  `toml:"name"`
		MinLevel          int     `toml:"min_level"`
		MaxLevel          int     `toml:"max_level"`
		PointMultiplier   float64 `toml:"point_multiplier"`
		DailyListingLimit int     `toml:"daily_listing_limit"`
		UnlocksThemes     bool    `toml:"unlocks_themes"`
		StreakEligible    bool    `toml:"streak_eligible"`
		MonthlyFreeCode   bool    `toml:"monthly_free_code"`
	} `toml:"tiers"`
}

// startSeedTiers replaces the tier table with the bands of the seed file.
// The whole swap happens in one transaction, so a bad file leaves the old
// bands in place.
func (s *srv) startSeedTiers(*cli.Context) error {
	s.loadBaseContext()
	s.ctx = xcontext.WithDB(s.ctx, s.newDatabase())
	s.migrateDB()
	s.loadRepos()

	var seed tierSeed
	seedFile := xcontext.Configs(s.ctx).Points.TierSeedFile
	if _, err := toml.DecodeFile(seedFile, &seed); err != nil {
		return err
	}

	tiers := make([]entity.LevelTier, 0, len(seed.Tiers))
	for _, t := range seed.Tiers {
		tiers = append(tiers, entity.LevelTier{
			Base:              entity.Base{ID: uuid.NewString()},
			Name:              t.Name,
			MinLevel:          t.MinLevel,
			MaxLevel:          t.MaxLevel,
			PointMultiplier:   t.PointMultiplier,
			DailyListingLimit: t.DailyListingLimit,
			UnlocksThemes:     t.UnlocksThemes,
			StreakEligible:    t.StreakEligible,
			MonthlyFreeCode:   t.MonthlyFreeCode,
		})
	}

	if err := progression.ValidateBands(tiers); err != nil {
		return err
	}

	ctx := xcontext.WithDBTransaction(s.ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := s.tierRepo.DeleteAll(ctx); err != nil {
		return err
	}

	for i := range tiers {
		if err := s.tierRepo.Create(ctx, &tiers[i]); err != nil {
			return err
		}
	}

	xcontext.WithCommitDBTransaction(ctx)
	xcontext.Logger(s.ctx).Infof("Seeded %d tier bands from %s", len(tiers), seedFile)
	return nil
}
