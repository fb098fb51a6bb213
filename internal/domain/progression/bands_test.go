package progression

import (
	"testing"

	"github.com/swapapp/backend/internal/entity"
	"github.com/stretchr/testify/require"
)

func TestValidateBands(t *testing.T) {
	valid := []entity.LevelTier{
		{Name: "B", MinLevel: 5, MaxLevel: 9, PointMultiplier: 1.1},
		{Name: "A", MinLevel: 1, MaxLevel: 4, PointMultiplier: 1},
		{Name: "C", MinLevel: 10, MaxLevel: 99, PointMultiplier: 1.5},
	}
	require.NoError(t, ValidateBands(valid))

	require.Error(t, ValidateBands(nil))

	gap := []entity.LevelTier{
		{Name: "A", MinLevel: 1, MaxLevel: 4},
		{Name: "B", MinLevel: 6, MaxLevel: 9},
	}
	require.Error(t, ValidateBands(gap))

	overlap := []entity.LevelTier{
		{Name: "A", MinLevel: 1, MaxLevel: 5},
		{Name: "B", MinLevel: 5, MaxLevel: 9},
	}
	require.Error(t, ValidateBands(overlap))

	notFromOne := []entity.LevelTier{
		{Name: "A", MinLevel: 2, MaxLevel: 9},
	}
	require.Error(t, ValidateBands(notFromOne))

	inverted := []entity.LevelTier{
		{Name: "A", MinLevel: 1, MaxLevel: 9},
		{Name: "B", MinLevel: 10, MaxLevel: 5},
	}
	require.Error(t, ValidateBands(inverted))

	negative := []entity.LevelTier{
		{Name: "A", MinLevel: 1, MaxLevel: 9, PointMultiplier: -1},
	}
	require.Error(t, ValidateBands(negative))
}
