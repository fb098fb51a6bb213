package entity

// LevelTier is a banded perk set. Bands are inclusive and must partition the
// level line without overlap; the tier seed file is validated on load.
type LevelTier struct {
	Base

	Name     string
	MinLevel int
	MaxLevel int

	PointMultiplier   float64 `gorm:"default:1"`
	DailyListingLimit int

	UnlocksThemes   bool
	StreakEligible  bool
	MonthlyFreeCode bool
}
