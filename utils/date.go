package utils

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02" // yyyy-MM-dd

func MustParseDate(dateStr string) time.Time {
	t, _ := time.ParseInLocation(DateLayout, dateStr, time.UTC)
	return t
}

func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, dateStr, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date %q: %w", dateStr, err)
	}
	return t, nil
}

// WeekStart truncates t to the Monday of its calendar week, midnight UTC.
func WeekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7 // Sunday belongs to the preceding week
	}
	return day.AddDate(0, 0, -offset)
}

// WeekStartOf returns the Monday of the week containing dateStr.
func WeekStartOf(dateStr string) (string, error) {
	t, err := ParseDate(dateStr)
	if err != nil {
		return "", err
	}
	return WeekStart(t).Format(DateLayout), nil
}

// WeekDates lists the seven dates of the week beginning at weekStart.
func WeekDates(weekStart time.Time) []string {
	dates := make([]string, 7)
	for i := 0; i < 7; i++ {
		dates[i] = weekStart.AddDate(0, 0, i).Format(DateLayout)
	}
	return dates
}

// DateInWeek reports whether dateStr falls within [weekStart, weekStart+6].
func DateInWeek(dateStr string, weekStart time.Time) bool {
	t, err := ParseDate(dateStr)
	if err != nil {
		return false
	}
	end := weekStart.AddDate(0, 0, 7)
	return !t.Before(weekStart) && t.Before(end)
}
