package model

import "time"

type ClockStatus string

const (
	ClockNotStarted ClockStatus = "not_started"
	ClockedIn       ClockStatus = "clocked_in"
	ClockPaused     ClockStatus = "paused"
	ClockedOut      ClockStatus = "clocked_out"
)

// AttendanceRecord tracks one employee's clock state for one work day.
// OpenedAt is set only while the employee is clocked in; CommittedSeconds
// holds the closed intervals only, never the open one.
type AttendanceRecord struct {
	ID               int32       `gorm:"primaryKey;column:id" json:"id"`
	EmployeeID       int32       `gorm:"column:employee_id;not null;uniqueIndex:idx_attendance_employee_day" json:"employeeId"`
	WorkDay          string      `gorm:"column:work_day;type:date;not null;uniqueIndex:idx_attendance_employee_day" json:"workDay"`
	Status           ClockStatus `gorm:"column:status;type:varchar(20);not null" json:"status"`
	CommittedSeconds int64       `gorm:"column:committed_seconds;not null;default:0" json:"committedSeconds"`
	OpenedAt         *time.Time  `gorm:"column:opened_at" json:"openedAt,omitempty"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}

func (r AttendanceRecord) Terminal() bool {
	return r.Status == ClockedOut
}
