package core

import (
	"fmt"
	"sort"
	"time"

	"timewise.app/timewise/core"
	"timewise.app/timewise/timetrack/model"
	"timewise.app/timewise/utils"
)

type MatrixRow struct {
	Key           GroupKey           `json:"-"`
	ProjectID     int32              `json:"projectId"`
	ProjectName   string             `json:"projectName,omitempty"`
	TaskName      string             `json:"taskName"`
	AssigneeIDs   []int32            `json:"assigneeIds"`
	AssigneeNames []string           `json:"assigneeNames,omitempty"`
	Status        model.EntryStatus  `json:"status"`
	BillingType   model.BillingType  `json:"billingType"`
	Holder        bool               `json:"holder"`
	HoursByDate   map[string]float64 `json:"hoursByDate"`
	Total         float64            `json:"total"`
}

type WeeklyMatrix struct {
	WeekStart  string             `json:"weekStart"`
	Dates      []string           `json:"dates"`
	Rows       []MatrixRow        `json:"rows"`
	DayTotals  map[string]float64 `json:"dayTotals"`
	GrandTotal float64            `json:"grandTotal"`
}

// BuildWeeklyMatrix folds the week's entries into one row per group key.
// Normally a group holds at most one entry per date, but duplicates are
// summed rather than trusted away.
func BuildWeeklyMatrix(entries []model.TimeEntry, weekStart time.Time) WeeklyMatrix {
	dates := utils.WeekDates(weekStart)
	inWeek := utils.Filter(entries, func(e model.TimeEntry) bool {
		return utils.DateInWeek(e.WorkDate, weekStart)
	})

	matrix := WeeklyMatrix{
		WeekStart: weekStart.Format(utils.DateLayout),
		Dates:     dates,
		DayTotals: make(map[string]float64, len(dates)),
	}

	groups := utils.GroupBy(inWeek, KeyOf)
	for key, rows := range groups {
		sort.Slice(rows, func(i, j int) bool { return rows[i].WorkDate < rows[j].WorkDate })

		row := MatrixRow{
			Key:         key,
			ProjectID:   key.ProjectID,
			TaskName:    key.TaskName,
			AssigneeIDs: key.AssigneeList(),
			Status:      rows[0].Status,
			BillingType: rows[0].BillingType,
			Holder:      true,
			HoursByDate: make(map[string]float64),
		}
		for _, e := range rows {
			row.HoursByDate[e.WorkDate] += e.Hours
			row.Total += e.Hours
			if !e.Holder {
				row.Holder = false
			}
		}
		matrix.Rows = append(matrix.Rows, row)
	}

	sort.Slice(matrix.Rows, func(i, j int) bool { return matrix.Rows[i].Key.Less(matrix.Rows[j].Key) })

	for _, row := range matrix.Rows {
		for date, hours := range row.HoursByDate {
			matrix.DayTotals[date] += hours
			matrix.GrandTotal += hours
		}
	}

	return matrix
}

// ResolveNames fills the display-name fields of every row from the
// directory. Unknown ids fall back to a "#id" placeholder.
func (m *WeeklyMatrix) ResolveNames(dir core.Directory) {
	for i := range m.Rows {
		m.Rows[i].ProjectName = projectName(dir, m.Rows[i].ProjectID)
		m.Rows[i].AssigneeNames = assigneeNames(dir, m.Rows[i].AssigneeIDs)
	}
}

type SummaryRow struct {
	Key           GroupKey          `json:"-"`
	ProjectID     int32             `json:"projectId"`
	ProjectName   string            `json:"projectName,omitempty"`
	TaskName      string            `json:"taskName"`
	AssigneeIDs   []int32           `json:"assigneeIds"`
	AssigneeNames []string          `json:"assigneeNames,omitempty"`
	Status        model.EntryStatus `json:"status"`
	BillingType   model.BillingType `json:"billingType"`
	TotalHours    float64           `json:"totalHours"`
}

// ResolveSummaryNames is the summary counterpart of ResolveNames.
func ResolveSummaryNames(rows []SummaryRow, dir core.Directory) {
	for i := range rows {
		rows[i].ProjectName = projectName(dir, rows[i].ProjectID)
		rows[i].AssigneeNames = assigneeNames(dir, rows[i].AssigneeIDs)
	}
}

func projectName(dir core.Directory, id int32) string {
	if name, ok := dir.ResolveProject(id); ok {
		return name
	}
	return fmt.Sprintf("#%d", id)
}

func assigneeNames(dir core.Directory, ids []int32) []string {
	return utils.Map(ids, func(id int32) string {
		if name, ok := dir.ResolveEmployee(id); ok {
			return name
		}
		return fmt.Sprintf("#%d", id)
	})
}

// BuildSummary collapses the date axis: one row per group over the whole
// range. The earliest entry supplies the display metadata.
func BuildSummary(entries []model.TimeEntry) []SummaryRow {
	groups := utils.GroupBy(entries, KeyOf)

	summary := make([]SummaryRow, 0, len(groups))
	for key, rows := range groups {
		sort.Slice(rows, func(i, j int) bool { return rows[i].WorkDate < rows[j].WorkDate })

		row := SummaryRow{
			Key:         key,
			ProjectID:   key.ProjectID,
			TaskName:    key.TaskName,
			AssigneeIDs: key.AssigneeList(),
			Status:      rows[0].Status,
			BillingType: rows[0].BillingType,
		}
		for _, e := range rows {
			row.TotalHours += e.Hours
		}
		summary = append(summary, row)
	}

	sort.Slice(summary, func(i, j int) bool { return summary[i].Key.Less(summary[j].Key) })
	return summary
}

// SortLogs returns the flat non-zero entries ordered by the caller's chosen
// field. Zero-hour holder rows never show in logs.
func SortLogs(entries []model.TimeEntry, field, dir string) []model.TimeEntry {
	logs := utils.Filter(entries, func(e model.TimeEntry) bool { return e.Hours > 0 })

	less := func(i, j int) bool { return logs[i].WorkDate < logs[j].WorkDate }
	switch field {
	case "hours":
		less = func(i, j int) bool { return logs[i].Hours < logs[j].Hours }
	case "taskName":
		less = func(i, j int) bool { return logs[i].TaskName < logs[j].TaskName }
	case "projectId":
		less = func(i, j int) bool { return logs[i].ProjectID < logs[j].ProjectID }
	}

	if dir == "desc" {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}

	sort.SliceStable(logs, less)
	return logs
}
