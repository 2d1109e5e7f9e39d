package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"timewise.app/timewise/core"
	timetrack "timewise.app/timewise/timetrack/core"
)

const sheet = "Timesheet"

// WeeklyMatrixWorkbook renders a weekly matrix as an xlsx workbook: one row
// per task group, one column per weekday, totals on the edges.
func WeeklyMatrixWorkbook(matrix timetrack.WeeklyMatrix, dir core.Directory) (*bytes.Buffer, error) {
	matrix.ResolveNames(dir)

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", sheet)

	headers := append([]string{"Project", "Task", "Assignees"}, matrix.Dates...)
	headers = append(headers, "Total")
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, header)
	}

	rowNum := 2
	for _, row := range matrix.Rows {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), row.ProjectName)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), row.TaskName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), strings.Join(row.AssigneeNames, ", "))

		for i, date := range matrix.Dates {
			cell, err := excelize.CoordinatesToCellName(4+i, rowNum)
			if err != nil {
				return nil, err
			}
			if hours, ok := row.HoursByDate[date]; ok && hours > 0 {
				f.SetCellValue(sheet, cell, hours)
			}
		}

		cell, err := excelize.CoordinatesToCellName(4+len(matrix.Dates), rowNum)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, row.Total)
		rowNum++
	}

	// day totals footer
	f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), "Total")
	for i, date := range matrix.Dates {
		cell, err := excelize.CoordinatesToCellName(4+i, rowNum)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, matrix.DayTotals[date])
	}
	cell, err := excelize.CoordinatesToCellName(4+len(matrix.Dates), rowNum)
	if err != nil {
		return nil, err
	}
	f.SetCellValue(sheet, cell, matrix.GrandTotal)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("error writing workbook: %w", err)
	}
	return &buf, nil
}
