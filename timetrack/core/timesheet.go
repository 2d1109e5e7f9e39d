package core

import (
	"time"

	"gorm.io/gorm"

	"timewise.app/timewise/timetrack/model"
	"timewise.app/timewise/utils"
)

// UpsertCell applies the cell edit rule for one (group, date) cell as a
// single atomic unit. The week lock is checked before any row is touched.
func UpsertCell(db *gorm.DB, key GroupKey, date string, hours float64, description string) (CellChange, error) {
	var change CellChange

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := assertWeekUnlocked(tx, key.AssigneeList(), date); err != nil {
			return err
		}

		group, err := lockGroupEntries(tx, key)
		if err != nil {
			return err
		}

		matching := utils.Filter(group, func(e model.TimeEntry) bool { return e.WorkDate == date })
		var rep *model.TimeEntry
		if len(group) > 0 {
			rep = &group[0]
		}

		change, err = PlanCellUpsert(rep, matching, date, hours, description)
		if err != nil {
			return err
		}

		switch change.Action {
		case CellCreate:
			if err := ValidateEntry(change.Entry); err != nil {
				return err
			}
			return tx.Create(change.Entry).Error
		case CellUpdate:
			return tx.Save(change.Entry).Error
		case CellDelete:
			return tx.Delete(&model.TimeEntry{}, "id = ?", change.Entry.ID).Error
		}
		return nil
	})

	return change, err
}

// AddTaskRow makes a group visible in a week before any hours are logged by
// creating one zero-hour holder entry on the week's first day. Re-adding an
// existing row returns the row already there.
func AddTaskRow(db *gorm.DB, key GroupKey, weekStart string, billingType model.BillingType) (model.TimeEntry, error) {
	monday, err := utils.WeekStartOf(weekStart)
	if err != nil {
		return model.TimeEntry{}, err
	}
	if monday != weekStart {
		return model.TimeEntry{}, ErrNotMonday
	}

	assignees := key.AssigneeList()
	if len(assignees) == 0 {
		return model.TimeEntry{}, ErrNoAssignees
	}
	if billingType == "" {
		billingType = model.Billable
	}

	var holder model.TimeEntry
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := assertWeekUnlocked(tx, assignees, weekStart); err != nil {
			return err
		}

		group, err := lockGroupEntries(tx, key)
		if err != nil {
			return err
		}

		week := utils.MustParseDate(weekStart)
		existing := utils.Filter(group, func(e model.TimeEntry) bool {
			return utils.DateInWeek(e.WorkDate, week)
		})
		if len(existing) > 0 {
			holder = existing[0]
			return nil
		}

		holder = model.TimeEntry{
			ProjectID:   key.ProjectID,
			TaskName:    key.TaskName,
			AssigneeIDs: assignees,
			WorkDate:    weekStart,
			Hours:       0,
			Status:      model.EntryOpen,
			BillingType: billingType,
			Holder:      true,
		}
		if err := ValidateEntry(&holder); err != nil {
			return err
		}
		return tx.Create(&holder).Error
	})

	return holder, err
}

// DeleteTaskRow removes every entry of a group within one week. weekStart
// must be a Monday so the seven-day window cannot reach into a week whose
// lock was never checked.
func DeleteTaskRow(db *gorm.DB, key GroupKey, weekStart string) (int64, error) {
	monday, err := utils.WeekStartOf(weekStart)
	if err != nil {
		return 0, err
	}
	if monday != weekStart {
		return 0, ErrNotMonday
	}
	week := utils.MustParseDate(weekStart)

	var deleted int64
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := assertWeekUnlocked(tx, key.AssigneeList(), weekStart); err != nil {
			return err
		}

		group, err := lockGroupEntries(tx, key)
		if err != nil {
			return err
		}

		for _, e := range group {
			if !utils.DateInWeek(e.WorkDate, week) {
				continue
			}
			if err := tx.Delete(&model.TimeEntry{}, "id = ?", e.ID).Error; err != nil {
				return err
			}
			deleted++
		}
		return nil
	})

	return deleted, err
}

// UpdateEntry edits a single entry in place. Zero hours removes the row,
// consistent with the cell rule.
func UpdateEntry(db *gorm.DB, id string, hours float64, description string) (CellChange, error) {
	if hours < 0 {
		return CellChange{}, ErrNegativeHours
	}

	var change CellChange
	err := db.Transaction(func(tx *gorm.DB) error {
		entry, err := GetEntry(tx, id)
		if err != nil {
			return err
		}

		if err := assertWeekUnlocked(tx, entry.AssigneeIDs, entry.WorkDate); err != nil {
			return err
		}

		if hours == 0 {
			change = CellChange{Action: CellDelete, Entry: &entry}
			return tx.Delete(&model.TimeEntry{}, "id = ?", entry.ID).Error
		}

		entry.Hours = hours
		entry.Description = description
		entry.Holder = false
		change = CellChange{Action: CellUpdate, Entry: &entry}
		return tx.Save(&entry).Error
	})

	return change, err
}

// WeekMatrix loads the week's entries, optionally restricted to one
// employee's assignments and a project set, and folds them into the weekly
// matrix.
func WeekMatrix(db *gorm.DB, employeeID *int32, projects []int32, weekStart time.Time) (WeeklyMatrix, error) {
	start := weekStart.Format(utils.DateLayout)
	end := weekStart.AddDate(0, 0, 6).Format(utils.DateLayout)

	var entries []model.TimeEntry
	var err error
	if employeeID != nil {
		entries, err = ListEntriesByEmployee(db, *employeeID, start, end)
	} else {
		entries, err = ListEntriesByDateRange(db, start, end)
	}
	if err != nil {
		return WeeklyMatrix{}, err
	}

	if len(projects) > 0 {
		entries = utils.Filter(entries, func(e model.TimeEntry) bool {
			return utils.Contains(projects, e.ProjectID)
		})
	}

	return BuildWeeklyMatrix(entries, weekStart), nil
}
