package timesheet

import (
	"net/http"

	"github.com/gin-gonic/gin"

	timetrack "timewise.app/timewise/timetrack/core"
	"timewise.app/timewise/timetrack/model"
	common "timewise.app/timewise/timetrack/web/common"
	web "timewise.app/timewise/web/common"
)

type GroupParams struct {
	ProjectID   int32   `json:"projectId" binding:"required"`
	TaskName    string  `json:"taskName" binding:"required"`
	AssigneeIDs []int32 `json:"assigneeIds" binding:"required"`
}

func (g GroupParams) key() timetrack.GroupKey {
	return timetrack.NewGroupKey(g.ProjectID, g.TaskName, g.AssigneeIDs)
}

type CellParams struct {
	GroupParams
	Date        string  `json:"date" binding:"required,datetime=2006-01-02"`
	Hours       float64 `json:"hours" binding:"gte=0"`
	Description string  `json:"description,omitempty"`
}

func (ep *Endpoint) UpsertCell(c *gin.Context) {
	var params CellParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	db, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	change, err := timetrack.UpsertCell(db, params.key(), params.Date, params.Hours, params.Description)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(change))
}

type AddRowParams struct {
	GroupParams
	WeekStart   string            `json:"weekStart" binding:"required,datetime=2006-01-02"`
	BillingType model.BillingType `json:"billingType,omitempty"`
}

func (ep *Endpoint) AddRow(c *gin.Context) {
	var params AddRowParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	db, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	holder, err := timetrack.AddTaskRow(db, params.key(), params.WeekStart, params.BillingType)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(holder))
}

type DeleteRowParams struct {
	GroupParams
	WeekStart string `json:"weekStart" binding:"required,datetime=2006-01-02"`
}

func (ep *Endpoint) DeleteRow(c *gin.Context) {
	var params DeleteRowParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	db, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	deleted, err := timetrack.DeleteTaskRow(db, params.key(), params.WeekStart)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(gin.H{"deleted": deleted}))
}

type UpdateEntryParams struct {
	Hours       float64 `json:"hours" binding:"gte=0"`
	Description string  `json:"description,omitempty"`
}

func (ep *Endpoint) UpdateEntry(c *gin.Context) {
	id := c.Param("id")

	var params UpdateEntryParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	db, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	change, err := timetrack.UpdateEntry(db, id, params.Hours, params.Description)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(change))
}
