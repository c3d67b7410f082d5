package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"camphq/platform/internal/service"
	"camphq/platform/pkg/response"
)

type ExportHandler struct {
	exportService service.ExportService
}

func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// Export returns flat rows for the requested type: athletes, emails, or
// registrations.
func (h *ExportHandler) Export(c *gin.Context) {
	exportType := c.Param("type")

	rows, err := h.exportService.Export(c.Request.Context(), exportType)
	if err != nil {
		if errors.Is(err, service.ErrUnknownExportType) {
			response.BadRequest(c, "unknown export type")
			return
		}
		response.InternalError(c, "failed to build export")
		return
	}
	response.Success(c, rows)
}
