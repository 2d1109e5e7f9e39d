package core

import (
	"sort"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"timewise.app/timewise/timetrack/model"
	"timewise.app/timewise/utils"
)

// ValidateEntry enforces the boundary rules: non-negative hours, a non-empty
// assignee set and a project reference.
func ValidateEntry(e *model.TimeEntry) error {
	if e.Hours < 0 {
		return ErrNegativeHours
	}
	if len(e.AssigneeIDs) == 0 {
		return ErrNoAssignees
	}
	if e.ProjectID <= 0 {
		return ErrNoProject
	}
	if _, err := utils.ParseDate(e.WorkDate); err != nil {
		return err
	}
	return nil
}

func GetEntry(db *gorm.DB, id string) (model.TimeEntry, error) {
	var entry model.TimeEntry
	err := db.Where("id = ?", id).First(&entry).Error
	return entry, err
}

func ListEntriesByDateRange(db *gorm.DB, start, end string) ([]model.TimeEntry, error) {
	var entries []model.TimeEntry
	err := db.Where("work_date BETWEEN ? AND ?", start, end).
		Order("work_date, task_name").
		Find(&entries).Error
	return entries, err
}

// ListEntriesByEmployee returns the entries whose assignee set contains the
// employee, bounded to a date range.
func ListEntriesByEmployee(db *gorm.DB, employeeID int32, start, end string) ([]model.TimeEntry, error) {
	var entries []model.TimeEntry
	err := db.Where("work_date BETWEEN ? AND ?", start, end).
		Where("JSON_CONTAINS(assignee_ids, CAST(? AS JSON))", employeeID).
		Order("work_date, task_name").
		Find(&entries).Error
	return entries, err
}

// lockGroupEntries loads every row of a group under FOR UPDATE so that
// concurrent edits to the same cell serialize. The assignee component is
// compared in Go; project and task narrow the scan.
func lockGroupEntries(tx *gorm.DB, key GroupKey) ([]model.TimeEntry, error) {
	var candidates []model.TimeEntry
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("project_id = ? AND task_name = ?", key.ProjectID, key.TaskName).
		Find(&candidates).Error
	if err != nil {
		return nil, err
	}

	group := utils.Filter(candidates, func(e model.TimeEntry) bool { return KeyOf(e) == key })
	sort.Slice(group, func(i, j int) bool { return group[i].WorkDate < group[j].WorkDate })
	return group, nil
}
