package timesheet

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"timewise.app/timewise/core"
	"timewise.app/timewise/infrastructure/communication"
	timetrack "timewise.app/timewise/timetrack/core"
	common "timewise.app/timewise/timetrack/web/common"
	"timewise.app/timewise/utils"
	web "timewise.app/timewise/web/common"
)

type Endpoint struct {
	base     common.Handler
	notifier *communication.Slack // nil disables notifications
}

func Register(r *gin.RouterGroup, dm *core.DatabaseManager, notifier *communication.Slack) {
	endpoint := &Endpoint{base: common.Handler{Dm: dm}, notifier: notifier}

	r.POST("/timesheets/matrix", endpoint.Matrix)
	r.POST("/timesheets/summary", endpoint.Summary)
	r.POST("/timesheets/logs", endpoint.Logs)
	r.POST("/timesheets/export", endpoint.Export)

	r.PUT("/timesheets/cell", endpoint.UpsertCell)
	r.POST("/timesheets/rows", endpoint.AddRow)
	r.DELETE("/timesheets/rows", endpoint.DeleteRow)
	r.PUT("/timesheets/entries/:id", endpoint.UpdateEntry)

	r.POST("/timesheets/submit", endpoint.Submit)
	r.GET("/timesheets/locked", endpoint.Locked)
}

type SubmitParams struct {
	EmployeeID int32  `json:"employeeId" binding:"required"`
	WeekStart  string `json:"weekStart" binding:"required,datetime=2006-01-02"`
}

func (ep *Endpoint) Submit(c *gin.Context) {
	var params SubmitParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	db, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	sheet, err := timetrack.SubmitWeek(db, params.EmployeeID, params.WeekStart, time.Now().UTC())
	if err != nil {
		common.RespondError(c, err)
		return
	}

	if ep.notifier != nil {
		msg := fmt.Sprintf("Timesheet submitted: employee %d, week of %s", sheet.EmployeeID, sheet.WeekStart)
		if err := ep.notifier.Info(msg); err != nil {
			fmt.Printf("slack notify failed: %v\n", err)
		}
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(sheet))
}

func (ep *Endpoint) Locked(c *gin.Context) {
	employeeID, err := strconv.Atoi(c.Query("employeeId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Invalid employeeId"))
		return
	}
	// any day of the target week is accepted; IsLocked answers for the week
	weekStart := c.Query("weekStart")
	if _, err := utils.ParseDate(weekStart); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Invalid weekStart"))
		return
	}

	db, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	locked, err := timetrack.IsLocked(db, int32(employeeID), weekStart)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(gin.H{"locked": locked}))
}
