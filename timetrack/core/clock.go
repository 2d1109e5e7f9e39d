package core

import (
	"time"

	"timewise.app/timewise/timetrack/model"
)

// Clock transitions are pure functions over an AttendanceRecord and an
// injected wall-clock time. Persistence and locking live in attendance.go;
// everything here can be exercised without a database.

// ClockInRecord opens a work interval. Clocking in while already clocked in
// is a no-op; clocking in after clock-out is the one rejected transition.
func ClockInRecord(rec *model.AttendanceRecord, now time.Time) error {
	switch rec.Status {
	case model.ClockedOut:
		return ErrAlreadyClockedOut
	case model.ClockedIn:
		return nil
	}

	t := now
	rec.Status = model.ClockedIn
	rec.OpenedAt = &t
	return nil
}

// PauseRecord commits the open interval and suspends the day. Pausing in any
// state other than ClockedIn is a no-op.
func PauseRecord(rec *model.AttendanceRecord, now time.Time) {
	if rec.Status != model.ClockedIn {
		return
	}

	rec.CommittedSeconds += openSeconds(rec, now)
	rec.OpenedAt = nil
	rec.Status = model.ClockPaused
}

// ClockOutRecord closes the day. Any open interval is committed first; the
// record is terminal afterwards.
func ClockOutRecord(rec *model.AttendanceRecord, now time.Time) {
	if rec.Status == model.ClockedOut {
		return
	}

	if rec.Status == model.ClockedIn {
		rec.CommittedSeconds += openSeconds(rec, now)
	}
	rec.OpenedAt = nil
	rec.Status = model.ClockedOut
}

// DisplaySeconds is the live elapsed total: committed seconds plus the open
// interval while clocked in. It is recomputed on every read and never stored.
func DisplaySeconds(rec *model.AttendanceRecord, now time.Time) int64 {
	if rec.Status != model.ClockedIn {
		return rec.CommittedSeconds
	}
	return rec.CommittedSeconds + openSeconds(rec, now)
}

// openSeconds floors the open interval to whole seconds; a skewed clock that
// reads before the interval start counts as zero.
func openSeconds(rec *model.AttendanceRecord, now time.Time) int64 {
	if rec.OpenedAt == nil {
		return 0
	}
	secs := int64(now.Sub(*rec.OpenedAt) / time.Second)
	if secs < 0 {
		return 0
	}
	return secs
}
