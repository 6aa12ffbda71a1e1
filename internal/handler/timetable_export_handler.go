package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sma-class-api/internal/service"
	"github.com/noah-isme/sma-class-api/pkg/response"
)

type timetableExporter interface {
	Export(ctx context.Context, classID, format string) (*service.ExportFile, error)
}

// TimetableExportHandler serves timetable downloads.
type TimetableExportHandler struct {
	exporter timetableExporter
}

// NewTimetableExportHandler constructs TimetableExportHandler.
func NewTimetableExportHandler(exporter timetableExporter) *TimetableExportHandler {
	return &TimetableExportHandler{exporter: exporter}
}

// Export godoc
// @Summary Download a class timetable
// @Description Renders the weekly timetable as CSV (default) or PDF.
// @Tags classes
// @Produce text/csv
// @Produce application/pdf
// @Param id path string true "Class ID"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Security BearerAuth
// @Router /classes/{id}/schedule/export [get]
func (h *TimetableExportHandler) Export(c *gin.Context) {
	file, err := h.exporter.Export(c.Request.Context(), c.Param("id"), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}
