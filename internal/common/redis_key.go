package common

import (
	"fmt"

	"github.com/swapapp/backend/pkg/dateutil"
)

func PointLeaderboardKey(periodValue string) string {
	return fmt.Sprintf("leaderboard:points:%s", periodValue)
}

func PointLeaderboardKeys(periods ...dateutil.Period) ([]string, error) {
	keys := make([]string, 0, len(periods))
	for _, p := range periods {
		value, err := dateutil.PeriodValue(nowFunc(), p)
		if err != nil {
			return nil, err
		}

		keys = append(keys, PointLeaderboardKey(value))
	}

	return keys, nil
}
