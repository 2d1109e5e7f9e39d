package clock

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"timewise.app/timewise/core"
	timetrack "timewise.app/timewise/timetrack/core"
	"timewise.app/timewise/timetrack/model"
	common "timewise.app/timewise/timetrack/web/common"
	web "timewise.app/timewise/web/common"
	"timewise.app/timewise/utils"
)

type Endpoint struct {
	base common.Handler
}

func Register(r *gin.RouterGroup, dm *core.DatabaseManager) {
	endpoint := &Endpoint{base: common.Handler{Dm: dm}}
	r.POST("/clock/in", endpoint.ClockIn)
	r.POST("/clock/pause", endpoint.Pause)
	r.POST("/clock/out", endpoint.ClockOut)
	r.GET("/clock/daily", endpoint.DailyTime)
}

type ClockActionDTO struct {
	EmployeeID int32  `json:"employeeId" binding:"required"`
	Date       string `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

func (dto ClockActionDTO) workDay(now time.Time) string {
	if dto.Date != "" {
		return dto.Date
	}
	return now.Format(utils.DateLayout)
}

type transitionFunc func(db *gorm.DB, employeeID int32, workDay string, now time.Time) (model.AttendanceRecord, error)

func (ep *Endpoint) transition(c *gin.Context, apply transitionFunc) {
	var dto ClockActionDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	db, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	now := time.Now().UTC()
	rec, err := apply(db, dto.EmployeeID, dto.workDay(now), now)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(rec))
}

func (ep *Endpoint) ClockIn(c *gin.Context) {
	ep.transition(c, timetrack.ClockIn)
}

func (ep *Endpoint) Pause(c *gin.Context) {
	ep.transition(c, timetrack.Pause)
}

func (ep *Endpoint) ClockOut(c *gin.Context) {
	ep.transition(c, timetrack.ClockOut)
}

func (ep *Endpoint) DailyTime(c *gin.Context) {
	employeeID, err := strconv.Atoi(c.Query("employeeId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Invalid employeeId"))
		return
	}

	now := time.Now().UTC()
	workDay := c.Query("date")
	if workDay == "" {
		workDay = now.Format(utils.DateLayout)
	} else if _, err := utils.ParseDate(workDay); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Invalid date"))
		return
	}

	db, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	daily, err := timetrack.GetDailyTime(db, int32(employeeID), workDay, now)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(daily))
}
