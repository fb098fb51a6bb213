package progression

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/swapapp/backend/internal/entity"
)

func TestLevelBoundaries(t *testing.T) {
	require.Equal(t, uint64(0), LevelFloor(1))
	require.Equal(t, uint64(25), LevelCeiling(1))
	require.Equal(t, uint64(25), LevelFloor(2))
	require.Equal(t, uint64(100), LevelCeiling(2))
	require.Equal(t, uint64(2500), LevelFloor(11))

	// level(LevelFloor(L)) == L and level(LevelFloor(L)-1) == L-1.
	for level := 2; level <= 50; level++ {
		floor := LevelFloor(level)
		require.Equal(t, level, LevelFromXP(floor))
		require.Equal(t, level-1, LevelFromXP(floor-1))
	}
}

func TestLevelFromXPZero(t *testing.T) {
	require.Equal(t, 1, LevelFromXP(0))
	require.Equal(t, float64(0), Progress(0, 1))
}

func TestLevelMonotonic(t *testing.T) {
	last := 0
	for xp := uint64(0); xp <= 10000; xp += 7 {
		level := LevelFromXP(xp)
		require.GreaterOrEqual(t, level, last)
		last = level
	}
}

func TestProgressBounds(t *testing.T) {
	for xp := uint64(0); xp <= 10000; xp += 13 {
		p := Progress(xp, LevelFromXP(xp))
		require.GreaterOrEqual(t, p, float64(0))
		require.LessOrEqual(t, p, float64(1))
	}

	// Half way between floor(2)=25 and ceiling(2)=100.
	require.InDelta(t, 0.5, Progress(62, 2), 0.01)
}

func fixtureTiers() []entity.LevelTier {
	return []entity.LevelTier{
		{Name: "Sprout", MinLevel: 1, MaxLevel: 4, PointMultiplier: 1, DailyListingLimit: 1},
		{Name: "Helper", MinLevel: 5, MaxLevel: 9, PointMultiplier: 1.1, DailyListingLimit: 3},
		{Name: "Hero", MinLevel: 10, MaxLevel: 19, PointMultiplier: 1.25, DailyListingLimit: 5, StreakEligible: true},
	}
}

func TestResolveTierDeterministic(t *testing.T) {
	tiers := fixtureTiers()

	// Exactly one tier matches every reachable level of the fixture bands.
	for level := 1; level <= 19; level++ {
		matches := 0
		for i := range tiers {
			if tiers[i].MinLevel <= level && level <= tiers[i].MaxLevel {
				matches++
			}
		}
		require.Equal(t, 1, matches, "level %d", level)

		tier := ResolveTier(level, tiers)
		require.NotNil(t, tier, "level %d", level)
	}

	require.Equal(t, "Sprout", ResolveTier(1, tiers).Name)
	require.Equal(t, "Helper", ResolveTier(5, tiers).Name)
	require.Equal(t, "Hero", ResolveTier(19, tiers).Name)

	// Beyond the highest band there is no tier.
	require.Nil(t, ResolveTier(20, tiers))
	require.Nil(t, ResolveTier(0, tiers))
}

func TestNextTier(t *testing.T) {
	tiers := fixtureTiers()

	require.Equal(t, "Helper", NextTier(1, tiers).Name)
	require.Equal(t, "Helper", NextTier(4, tiers).Name)
	require.Equal(t, "Hero", NextTier(5, tiers).Name)
	require.Nil(t, NextTier(10, tiers))
	require.Nil(t, NextTier(25, tiers))
}

func TestMultiplierDefaults(t *testing.T) {
	tiers := fixtureTiers()

	require.Equal(t, 1.25, Multiplier(12, tiers))
	require.Equal(t, float64(1), Multiplier(99, tiers))
	require.Equal(t, float64(1), Multiplier(1, nil))
}
