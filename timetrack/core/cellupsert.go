package core

import (
	"timewise.app/timewise/timetrack/model"
)

type CellAction string

const (
	CellNoop   CellAction = "noop"
	CellCreate CellAction = "create"
	CellUpdate CellAction = "update"
	CellDelete CellAction = "delete"
)

// CellChange is the planned effect of editing one (group, date) cell.
// For create and update Entry is the row as it should be stored; for delete
// it is the row to remove.
type CellChange struct {
	Action CellAction       `json:"action"`
	Entry  *model.TimeEntry `json:"entry,omitempty"`
}

// PlanCellUpsert decides how a cell edit maps onto stored rows. Applying the
// same plan twice lands on the same state, and zeroing a cell is identical
// to never having filled it.
//
// rep is a representative entry of the group (any date) used to clone new
// rows; matching holds the rows already on the target date.
func PlanCellUpsert(rep *model.TimeEntry, matching []model.TimeEntry, date string, hours float64, description string) (CellChange, error) {
	if hours < 0 {
		return CellChange{}, ErrNegativeHours
	}

	if len(matching) == 0 {
		if hours == 0 {
			return CellChange{Action: CellNoop}, nil
		}
		if rep == nil {
			return CellChange{}, ErrUnknownGroup
		}

		entry := model.TimeEntry{
			ProjectID:   rep.ProjectID,
			TaskName:    rep.TaskName,
			AssigneeIDs: rep.AssigneeIDs,
			WorkDate:    date,
			Hours:       hours,
			Status:      rep.Status,
			BillingType: rep.BillingType,
			Description: description,
		}
		return CellChange{Action: CellCreate, Entry: &entry}, nil
	}

	target := matching[0]
	if hours == 0 {
		return CellChange{Action: CellDelete, Entry: &target}, nil
	}

	target.Hours = hours
	target.Description = description
	target.Holder = false
	return CellChange{Action: CellUpdate, Entry: &target}, nil
}
