package dateutil

import (
	"fmt"
	"time"
)

type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodTotal Period = "total"
)

// PeriodValue returns the bucket value of t for a period, used to build
// leaderboard keys.
func PeriodValue(t time.Time, p Period) (string, error) {
	switch p {
	case PeriodWeek:
		year, week := t.ISOWeek()
		val := fmt.Sprintf("week/%d/%d", week, year)
		return val, nil

	case PeriodMonth:
		val := fmt.Sprintf("month/%d/%d", t.Month(), t.Year())
		return val, nil

	case PeriodTotal:
		return "total", nil

	default:
		return "", fmt.Errorf("period must be week, month, or total, but got %s", p)
	}
}

// ToPeriod parses a period from its request representation.
func ToPeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodWeek, PeriodMonth, PeriodTotal:
		return Period(s), nil
	default:
		return "", fmt.Errorf("period must be week, month, or total, but got %s", s)
	}
}

// PeriodStart returns the beginning of the period bucket containing t. The
// total period starts at the zero time.
func PeriodStart(t time.Time, p Period) (time.Time, error) {
	switch p {
	case PeriodWeek:
		day := BeginningOfDay(t)
		weekday := int(day.Weekday())
		if weekday == 0 {
			weekday = 7
		}

		return day.AddDate(0, 0, -(weekday - 1)), nil

	case PeriodMonth:
		y, m, _ := t.UTC().Date()
		return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC), nil

	case PeriodTotal:
		return time.Time{}, nil

	default:
		return time.Time{}, fmt.Errorf("period must be week, month, or total, but got %s", p)
	}
}

// BeginningOfDay truncates t to midnight UTC.
func BeginningOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
