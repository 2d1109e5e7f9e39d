package timesheet

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"timewise.app/timewise/core"
	timetrack "timewise.app/timewise/timetrack/core"
	"timewise.app/timewise/timetrack/export"
	"timewise.app/timewise/timetrack/model"
	common "timewise.app/timewise/timetrack/web/common"
	"timewise.app/timewise/utils"
	web "timewise.app/timewise/web/common"
)

type MatrixParams struct {
	WeekStart  string  `json:"weekStart" binding:"required,datetime=2006-01-02"`
	EmployeeID *int32  `json:"employeeId,omitempty"`
	Projects   []int32 `json:"projects,omitempty"`
}

func loadMatrix(db *gorm.DB, params MatrixParams) (timetrack.WeeklyMatrix, error) {
	week := utils.WeekStart(utils.MustParseDate(params.WeekStart))
	return timetrack.WeekMatrix(db, params.EmployeeID, params.Projects, week)
}

func (ep *Endpoint) Matrix(c *gin.Context) {
	var params MatrixParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	db, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	matrix, err := loadMatrix(db, params)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	dir, err := core.LoadDirectory(db)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	matrix.ResolveNames(dir)

	c.JSON(http.StatusOK, web.NewSuccessResponse(matrix))
}

type RangeParams struct {
	StartDate  web.DateOnly `json:"startDate" binding:"required"`
	EndDate    web.DateOnly `json:"endDate" binding:"required"`
	EmployeeID *int32       `json:"employeeId,omitempty"`
}

func listRange(db *gorm.DB, params RangeParams) ([]model.TimeEntry, error) {
	start := params.StartDate.String()
	end := params.EndDate.String()
	if params.EmployeeID != nil {
		return timetrack.ListEntriesByEmployee(db, *params.EmployeeID, start, end)
	}
	return timetrack.ListEntriesByDateRange(db, start, end)
}

func (ep *Endpoint) Summary(c *gin.Context) {
	var params RangeParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	db, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	entries, err := listRange(db, params)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	summary := timetrack.BuildSummary(entries)

	dir, err := core.LoadDirectory(db)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	timetrack.ResolveSummaryNames(summary, dir)

	c.JSON(http.StatusOK, web.NewSearchResponse(summary, int64(len(summary))))
}

type LogsParams struct {
	RangeParams
	SortField string `json:"sortField,omitempty"`
	SortDir   string `json:"sortDir,omitempty"`
}

func (ep *Endpoint) Logs(c *gin.Context) {
	var params LogsParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	db, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	entries, err := listRange(db, params.RangeParams)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	logs := timetrack.SortLogs(entries, params.SortField, params.SortDir)
	c.JSON(http.StatusOK, web.NewSearchResponse(logs, int64(len(logs))))
}

func (ep *Endpoint) Export(c *gin.Context) {
	var params MatrixParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	db, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	matrix, err := loadMatrix(db, params)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	dir, err := core.LoadDirectory(db)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	workbook, err := export.WeeklyMatrixWorkbook(matrix, dir)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	filename := fmt.Sprintf("timesheet-%s.xlsx", matrix.WeekStart)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		workbook.Bytes())
}
