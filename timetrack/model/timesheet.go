package model

import "time"

type TimesheetStatus string

const (
	TimesheetNotSubmitted TimesheetStatus = "not_submitted"
	TimesheetSubmitted    TimesheetStatus = "submitted"
)

// WeeklyTimesheet is the per-employee submission flag for one Monday-start
// week. Once submitted, entries dated inside the week are frozen.
type WeeklyTimesheet struct {
	ID          int32           `gorm:"primaryKey;column:id" json:"id"`
	EmployeeID  int32           `gorm:"column:employee_id;not null;uniqueIndex:idx_timesheet_employee_week" json:"employeeId"`
	WeekStart   string          `gorm:"column:week_start;type:date;not null;uniqueIndex:idx_timesheet_employee_week" json:"weekStart"`
	Status      TimesheetStatus `gorm:"column:status;type:varchar(20);not null" json:"status"`
	SubmittedAt *time.Time      `gorm:"column:submitted_at" json:"submittedAt,omitempty"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (WeeklyTimesheet) TableName() string {
	return "weekly_timesheets"
}
