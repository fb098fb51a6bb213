package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPeriodValue(t *testing.T) {
	at := time.Date(2024, time.March, 15, 13, 30, 0, 0, time.UTC)

	week, err := PeriodValue(at, PeriodWeek)
	require.NoError(t, err)
	require.Equal(t, "week/11/2024", week)

	month, err := PeriodValue(at, PeriodMonth)
	require.NoError(t, err)
	require.Equal(t, "month/3/2024", month)

	total, err := PeriodValue(at, PeriodTotal)
	require.NoError(t, err)
	require.Equal(t, "total", total)

	_, err = PeriodValue(at, Period("year"))
	require.Error(t, err)
}

func TestPeriodStart(t *testing.T) {
	// 2024-03-15 is a Friday; the week bucket starts on Monday the 11th.
	at := time.Date(2024, time.March, 15, 13, 30, 0, 0, time.UTC)

	week, err := PeriodStart(at, PeriodWeek)
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC), week)

	// A Sunday still belongs to the week that started the previous Monday.
	sunday := time.Date(2024, time.March, 17, 8, 0, 0, 0, time.UTC)
	week, err = PeriodStart(sunday, PeriodWeek)
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC), week)

	month, err := PeriodStart(at, PeriodMonth)
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), month)

	total, err := PeriodStart(at, PeriodTotal)
	require.NoError(t, err)
	require.True(t, total.IsZero())
}

func TestBeginningOfDay(t *testing.T) {
	at := time.Date(2024, time.March, 15, 23, 59, 59, 0, time.UTC)
	require.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), BeginningOfDay(at))
}
