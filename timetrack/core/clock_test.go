package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timewise.app/timewise/timetrack/model"
)

func at(hour, min int) time.Time {
	return time.Date(2024, 3, 4, hour, min, 0, 0, time.UTC)
}

func TestClockDay(t *testing.T) {
	rec := model.AttendanceRecord{
		EmployeeID: 7,
		WorkDay:    "2024-03-04",
		Status:     model.ClockNotStarted,
	}

	require.NoError(t, ClockInRecord(&rec, at(9, 0)))
	assert.Equal(t, model.ClockedIn, rec.Status)
	require.NotNil(t, rec.OpenedAt)
	assert.Equal(t, int64(0), rec.CommittedSeconds)

	PauseRecord(&rec, at(11, 0))
	assert.Equal(t, model.ClockPaused, rec.Status)
	assert.Nil(t, rec.OpenedAt)
	assert.Equal(t, int64(7200), rec.CommittedSeconds)

	require.NoError(t, ClockInRecord(&rec, at(11, 30)))
	assert.Equal(t, model.ClockedIn, rec.Status)
	assert.Equal(t, int64(7200), rec.CommittedSeconds)

	ClockOutRecord(&rec, at(16, 30))
	assert.Equal(t, model.ClockedOut, rec.Status)
	assert.Nil(t, rec.OpenedAt)
	assert.Equal(t, int64(25200), rec.CommittedSeconds)
	assert.Equal(t, int64(25200), DisplaySeconds(&rec, at(18, 0)))
}

func TestClockInIdempotent(t *testing.T) {
	rec := model.AttendanceRecord{Status: model.ClockNotStarted}
	require.NoError(t, ClockInRecord(&rec, at(9, 0)))
	opened := *rec.OpenedAt

	require.NoError(t, ClockInRecord(&rec, at(10, 0)))
	assert.Equal(t, opened, *rec.OpenedAt, "repeated clock-in must not move the open interval")
	assert.Equal(t, int64(0), rec.CommittedSeconds)
}

func TestClockInAfterClockOut(t *testing.T) {
	rec := model.AttendanceRecord{Status: model.ClockNotStarted}
	require.NoError(t, ClockInRecord(&rec, at(9, 0)))
	ClockOutRecord(&rec, at(17, 0))

	before := rec
	err := ClockInRecord(&rec, at(18, 0))
	assert.ErrorIs(t, err, ErrAlreadyClockedOut)
	assert.Equal(t, before, rec, "terminal record must not change")
}

func TestPauseNoop(t *testing.T) {
	tests := []struct {
		name   string
		status model.ClockStatus
	}{
		{"Not started", model.ClockNotStarted},
		{"Already paused", model.ClockPaused},
		{"Clocked out", model.ClockedOut},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := model.AttendanceRecord{Status: tt.status, CommittedSeconds: 600}
			PauseRecord(&rec, at(12, 0))
			assert.Equal(t, tt.status, rec.Status)
			assert.Equal(t, int64(600), rec.CommittedSeconds)
		})
	}
}

func TestClockOutIdempotent(t *testing.T) {
	rec := model.AttendanceRecord{Status: model.ClockedOut, CommittedSeconds: 3600}
	ClockOutRecord(&rec, at(18, 0))
	assert.Equal(t, int64(3600), rec.CommittedSeconds)
}

func TestClockOutFromPaused(t *testing.T) {
	rec := model.AttendanceRecord{Status: model.ClockPaused, CommittedSeconds: 5400}
	ClockOutRecord(&rec, at(18, 0))
	assert.Equal(t, model.ClockedOut, rec.Status)
	assert.Equal(t, int64(5400), rec.CommittedSeconds, "nothing open to commit from paused")
}

func TestManyPauseResumeCycles(t *testing.T) {
	rec := model.AttendanceRecord{Status: model.ClockNotStarted}

	// 4 cycles of 30 minutes each
	for i := 0; i < 4; i++ {
		start := at(9, 0).Add(time.Duration(i) * time.Hour)
		require.NoError(t, ClockInRecord(&rec, start))
		PauseRecord(&rec, start.Add(30*time.Minute))
	}
	ClockOutRecord(&rec, at(14, 0))

	assert.Equal(t, int64(4*1800), rec.CommittedSeconds)
}

func TestDisplaySeconds(t *testing.T) {
	rec := model.AttendanceRecord{Status: model.ClockNotStarted}
	require.NoError(t, ClockInRecord(&rec, at(9, 0)))

	prev := int64(-1)
	for _, m := range []int{0, 1, 5, 30, 90} {
		got := DisplaySeconds(&rec, at(9, 0).Add(time.Duration(m)*time.Minute))
		assert.GreaterOrEqual(t, got, prev, "display seconds must be non-decreasing")
		prev = got
	}
	assert.Equal(t, int64(90*60), prev)

	// reads never mutate the record
	assert.Equal(t, int64(0), rec.CommittedSeconds)
}

func TestOpenSecondsFloor(t *testing.T) {
	opened := at(9, 0)
	rec := model.AttendanceRecord{Status: model.ClockedIn, OpenedAt: &opened}

	assert.Equal(t, int64(1), DisplaySeconds(&rec, opened.Add(1900*time.Millisecond)))
	assert.Equal(t, int64(0), DisplaySeconds(&rec, opened.Add(-time.Minute)), "skewed clock reads as zero")
}
