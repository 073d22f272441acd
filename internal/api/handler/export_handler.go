package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Capp3/broadcast-flow-control-system/internal/service"
	"github.com/Capp3/broadcast-flow-control-system/pkg/response"
)

// ExportHandler serves schedule downloads.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates the ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

type exportScheduleQuery struct {
	Format    string `form:"format"     binding:"required,oneof=xlsx ics"`
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date"   binding:"omitempty,datetime=2006-01-02"`
}

// ExportSchedule streams the roster as a spreadsheet or calendar file.
// GET /api/export/schedule?format=xlsx|ics&start_date=&end_date=
func (h *ExportHandler) ExportSchedule(c *gin.Context) {
	var q exportScheduleQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ErrorWithDetails(c, 400, 10001, "validation failed", err.Error())
		return
	}

	buf, filename, contentType, err := h.exportSvc.Schedule(c.Request.Context(), q.Format, q.StartDate, q.EndDate)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			response.BadRequest(c, 10001, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
