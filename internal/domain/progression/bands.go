package progression

import (
	"fmt"
	"sort"

	"github.com/swapapp/backend/internal/entity"
)

// ValidateBands checks that the tier bands partition the level line: sorted,
// starting at level 1, inclusive, adjacent without gaps or overlap.
func ValidateBands(tiers []entity.LevelTier) error {
	if len(tiers) == 0 {
		return fmt.Errorf("no tier bands defined")
	}

	sorted := make([]entity.LevelTier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].MinLevel < sorted[j].MinLevel })

	if sorted[0].MinLevel != 1 {
		return fmt.Errorf("first band %q must start at level 1", sorted[0].Name)
	}

	for i, tier := range sorted {
		if tier.MinLevel > tier.MaxLevel {
			return fmt.Errorf("band %q has min level above max level", tier.Name)
		}

		if tier.PointMultiplier < 0 {
			return fmt.Errorf("band %q has a negative multiplier", tier.Name)
		}

		if i > 0 && tier.MinLevel != sorted[i-1].MaxLevel+1 {
			return fmt.Errorf("band %q does not start right after %q", tier.Name, sorted[i-1].Name)
		}
	}

	return nil
}
