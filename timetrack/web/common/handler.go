package common

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"timewise.app/timewise/core"
	timetrack "timewise.app/timewise/timetrack/core"
	web "timewise.app/timewise/web/common"
)

type Handler struct {
	Dm *core.DatabaseManager
}

func (h *Handler) GetDB(c *gin.Context) (*gorm.DB, error) {
	return h.Dm.GetDB(c.Request.Context())
}

// RespondError maps engine errors onto HTTP statuses. Rejected actions are
// client errors; only unexpected failures become 500s.
func RespondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, timetrack.ErrAlreadyClockedOut):
		c.JSON(http.StatusConflict, web.NewErrorResponse(err.Error()))
	case errors.Is(err, timetrack.ErrWeekLocked):
		c.JSON(http.StatusLocked, web.NewErrorResponse(err.Error()))
	case errors.Is(err, timetrack.ErrNegativeHours),
		errors.Is(err, timetrack.ErrNoAssignees),
		errors.Is(err, timetrack.ErrNoProject),
		errors.Is(err, timetrack.ErrUnknownGroup),
		errors.Is(err, timetrack.ErrNotMonday):
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(err.Error()))
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, web.NewErrorResponse("not found"))
	default:
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
	}
}
