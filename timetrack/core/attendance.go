package core

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"timewise.app/timewise/timetrack/model"
)

// Each transition runs as one transaction holding a row lock on the
// (employee, day) record so that rapid double-invocations serialize instead
// of double-counting or losing the open interval.

func lockAttendance(tx *gorm.DB, employeeID int32, workDay string) (model.AttendanceRecord, error) {
	var rec model.AttendanceRecord
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("employee_id = ? AND work_day = ?", employeeID, workDay).
		First(&rec).Error
	return rec, err
}

// ClockIn opens the day's work interval, creating the record on first use.
func ClockIn(db *gorm.DB, employeeID int32, workDay string, now time.Time) (model.AttendanceRecord, error) {
	var rec model.AttendanceRecord

	err := db.Transaction(func(tx *gorm.DB) error {
		found, err := lockAttendance(tx, employeeID, workDay)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			t := now
			rec = model.AttendanceRecord{
				EmployeeID: employeeID,
				WorkDay:    workDay,
				Status:     model.ClockedIn,
				OpenedAt:   &t,
			}
			return tx.Create(&rec).Error
		}
		if err != nil {
			return err
		}

		rec = found
		if err := ClockInRecord(&rec, now); err != nil {
			return err
		}
		return tx.Save(&rec).Error
	})

	return rec, err
}

// Pause commits the open interval. With no record or no open interval this
// is a defined no-op.
func Pause(db *gorm.DB, employeeID int32, workDay string, now time.Time) (model.AttendanceRecord, error) {
	var rec model.AttendanceRecord

	err := db.Transaction(func(tx *gorm.DB) error {
		found, err := lockAttendance(tx, employeeID, workDay)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			rec = model.AttendanceRecord{
				EmployeeID: employeeID,
				WorkDay:    workDay,
				Status:     model.ClockNotStarted,
			}
			return nil
		}
		if err != nil {
			return err
		}

		rec = found
		if rec.Status != model.ClockedIn {
			return nil
		}
		PauseRecord(&rec, now)
		return tx.Save(&rec).Error
	})

	return rec, err
}

// ClockOut closes the day. An absent record is created directly in the
// terminal state so out-of-order calls cannot resurrect the day.
func ClockOut(db *gorm.DB, employeeID int32, workDay string, now time.Time) (model.AttendanceRecord, error) {
	var rec model.AttendanceRecord

	err := db.Transaction(func(tx *gorm.DB) error {
		found, err := lockAttendance(tx, employeeID, workDay)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			rec = model.AttendanceRecord{
				EmployeeID: employeeID,
				WorkDay:    workDay,
				Status:     model.ClockedOut,
			}
			return tx.Create(&rec).Error
		}
		if err != nil {
			return err
		}

		rec = found
		if rec.Status == model.ClockedOut {
			return nil
		}
		ClockOutRecord(&rec, now)
		return tx.Save(&rec).Error
	})

	return rec, err
}

type DailyTime struct {
	Status           model.ClockStatus `json:"status"`
	CommittedSeconds int64             `json:"committedSeconds"`
	OpenedAt         *time.Time        `json:"openedAt,omitempty"`
	DisplaySeconds   int64             `json:"displaySeconds"`
}

// GetDailyTime is the lock-free read path; it never mutates the record.
func GetDailyTime(db *gorm.DB, employeeID int32, workDay string, now time.Time) (DailyTime, error) {
	var rec model.AttendanceRecord
	err := db.Where("employee_id = ? AND work_day = ?", employeeID, workDay).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return DailyTime{Status: model.ClockNotStarted}, nil
	}
	if err != nil {
		return DailyTime{}, err
	}

	return DailyTime{
		Status:           rec.Status,
		CommittedSeconds: rec.CommittedSeconds,
		OpenedAt:         rec.OpenedAt,
		DisplaySeconds:   DisplaySeconds(&rec, now),
	}, nil
}
