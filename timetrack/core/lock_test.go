package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timewise.app/timewise/utils"
)

func TestWeekLockedFreezesWholeWeek(t *testing.T) {
	submitted := []string{"2024-03-04"}

	// once the week is submitted, every one of its seven days is frozen
	for _, date := range utils.WeekDates(utils.MustParseDate("2024-03-04")) {
		locked, err := WeekLocked(submitted, date)
		require.NoError(t, err)
		assert.True(t, locked, "date %s must be frozen", date)
	}
}

func TestWeekLocked(t *testing.T) {
	tests := []struct {
		name      string
		submitted []string
		date      string
		want      bool
	}{
		{"No submissions", nil, "2024-03-06", false},
		{"Sunday before the submitted week", []string{"2024-03-04"}, "2024-03-03", false},
		{"Monday after the submitted week", []string{"2024-03-04"}, "2024-03-11", false},
		{"Date in its own submitted week", []string{"2024-03-11"}, "2024-03-11", true},
		{"Adjacent unsubmitted week stays open", []string{"2024-03-11"}, "2024-03-06", false},
		{"Several submitted weeks", []string{"2024-02-26", "2024-03-11"}, "2024-03-13", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locked, err := WeekLocked(tt.submitted, tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.want, locked)
		})
	}

	t.Run("Malformed date", func(t *testing.T) {
		_, err := WeekLocked([]string{"2024-03-04"}, "not-a-date")
		assert.Error(t, err)
	})
}

// A seven-day window rooted mid-week would span two calendar weeks; the rule
// judges each date by its own week, so the second week's submission still
// protects its dates.
func TestWeekLockedJudgesEachDateByItsOwnWeek(t *testing.T) {
	submitted := []string{"2024-03-11"}

	locked, err := WeekLocked(submitted, "2024-03-06")
	require.NoError(t, err)
	assert.False(t, locked)

	locked, err = WeekLocked(submitted, "2024-03-11")
	require.NoError(t, err)
	assert.True(t, locked, "a date reaching into the submitted week must be frozen")
}
