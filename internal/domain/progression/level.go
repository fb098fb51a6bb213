// Package progression holds the pure level/XP/tier arithmetic. It performs
// no I/O; everything is derived from xp and the configured tier bands.
package progression

import "github.com/swapapp/backend/internal/entity"

// LevelFloor returns the minimum XP required to be at level.
func LevelFloor(level int) uint64 {
	return uint64(level-1) * uint64(level-1) * 25
}

// LevelCeiling returns the minimum XP required to reach level+1.
func LevelCeiling(level int) uint64 {
	return uint64(level) * uint64(level) * 25
}

// LevelFromXP returns the largest level L >= 1 with LevelFloor(L) <= xp.
// The cached level column is display-only; anything that matters recomputes
// through here.
func LevelFromXP(xp uint64) int {
	level := 1
	for LevelCeiling(level) <= xp {
		level++
	}

	return level
}

// Progress returns how far xp is through the given level, in [0, 1].
func Progress(xp uint64, level int) float64 {
	floor := LevelFloor(level)
	ceiling := LevelCeiling(level)
	if ceiling <= floor {
		return 1
	}

	if xp <= floor {
		return 0
	}

	if xp >= ceiling {
		return 1
	}

	return float64(xp-floor) / float64(ceiling-floor)
}

// ResolveTier returns the tier whose band contains level, or nil. A nil
// tier is a valid state the caller must render as "no tier", not an error.
func ResolveTier(level int, tiers []entity.LevelTier) *entity.LevelTier {
	for i := range tiers {
		if tiers[i].MinLevel <= level && level <= tiers[i].MaxLevel {
			return &tiers[i]
		}
	}

	return nil
}

// NextTier returns the tier with the smallest MinLevel strictly greater
// than level, or nil when level already meets or exceeds the highest band.
func NextTier(level int, tiers []entity.LevelTier) *entity.LevelTier {
	var next *entity.LevelTier
	for i := range tiers {
		if tiers[i].MinLevel <= level {
			continue
		}

		if next == nil || tiers[i].MinLevel < next.MinLevel {
			next = &tiers[i]
		}
	}

	return next
}

// Multiplier returns the point multiplier of the tier containing level,
// defaulting to 1 when no tier matches.
func Multiplier(level int, tiers []entity.LevelTier) float64 {
	tier := ResolveTier(level, tiers)
	if tier == nil || tier.PointMultiplier <= 0 {
		return 1
	}

	return tier.PointMultiplier
}
