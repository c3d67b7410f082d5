package handler

import (
	"github.com/gin-gonic/gin"

	"camphq/platform/internal/service"
	"camphq/platform/pkg/response"
)

type UploadHandler struct {
	uploadService service.UploadService
}

func NewUploadHandler(uploadService service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

type PresignRequest struct {
	Filename string `json:"filename" binding:"required"`
}

// Presign hands back a short-lived PUT URL; the client uploads directly to
// object storage and stores the returned public URL.
func (h *UploadHandler) Presign(c *gin.Context) {
	var req PresignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	result, err := h.uploadService.Presign(c.Request.Context(), req.Filename)
	if err != nil {
		response.InternalError(c, "failed to presign upload")
		return
	}
	response.Success(c, result)
}
