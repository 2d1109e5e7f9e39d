package core

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"timewise.app/timewise/timetrack/model"
	"timewise.app/timewise/utils"
)

// SubmitWeek upserts the employee's weekly timesheet to Submitted. There is
// no unsubmit path; reversal would be an admin extension.
func SubmitWeek(db *gorm.DB, employeeID int32, weekStart string, now time.Time) (model.WeeklyTimesheet, error) {
	monday, err := utils.WeekStartOf(weekStart)
	if err != nil {
		return model.WeeklyTimesheet{}, err
	}
	if monday != weekStart {
		return model.WeeklyTimesheet{}, ErrNotMonday
	}

	t := now
	sheet := model.WeeklyTimesheet{
		EmployeeID:  employeeID,
		WeekStart:   weekStart,
		Status:      model.TimesheetSubmitted,
		SubmittedAt: &t,
	}

	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "employee_id"}, {Name: "week_start"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "submitted_at"}),
	}).Create(&sheet).Error
	if err != nil {
		return model.WeeklyTimesheet{}, err
	}

	return sheet, nil
}

// WeekLocked is the pure lock rule: a date is frozen exactly when the Monday
// of its own week appears among the submitted week starts. Each date is
// judged by its own week, never by the week of some enclosing window.
func WeekLocked(submittedWeeks []string, date string) (bool, error) {
	weekStart, err := utils.WeekStartOf(date)
	if err != nil {
		return false, err
	}
	return utils.Contains(submittedWeeks, weekStart), nil
}

// IsLocked reports whether the employee has submitted the week containing
// weekStart. Any day of the week reads the same answer.
func IsLocked(db *gorm.DB, employeeID int32, weekStart string) (bool, error) {
	monday, err := utils.WeekStartOf(weekStart)
	if err != nil {
		return false, err
	}

	var count int64
	err = db.Model(&model.WeeklyTimesheet{}).
		Where("employee_id = ? AND week_start = ? AND status = ?",
			employeeID, monday, model.TimesheetSubmitted).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// assertWeekUnlocked fails closed: a mutation touching a date is rejected
// when any of the affected assignees has submitted the week containing it.
func assertWeekUnlocked(tx *gorm.DB, assigneeIDs []int32, date string) error {
	if len(assigneeIDs) == 0 {
		return nil
	}

	var sheets []model.WeeklyTimesheet
	err := tx.
		Where("employee_id IN ? AND status = ?", assigneeIDs, model.TimesheetSubmitted).
		Find(&sheets).Error
	if err != nil {
		return err
	}

	weeks := utils.Map(sheets, func(s model.WeeklyTimesheet) string { return s.WeekStart })
	locked, err := WeekLocked(weeks, date)
	if err != nil {
		return err
	}
	if locked {
		return ErrWeekLocked
	}
	return nil
}
