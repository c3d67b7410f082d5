package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"camphq/platform/internal/service"
	"camphq/platform/pkg/response"
)

type LmsHandler struct {
	lmsService service.LmsService
}

func NewLmsHandler(lmsService service.LmsService) *LmsHandler {
	return &LmsHandler{lmsService: lmsService}
}

type LmsModuleRequest struct {
	Title         string `json:"title" binding:"required"`
	Position      int    `json:"position"`
	ContentURL    string `json:"content_url"`
	PassThreshold int    `json:"pass_threshold"`
}

func (r LmsModuleRequest) toInput() service.LmsModuleInput {
	return service.LmsModuleInput{
		Title:         r.Title,
		Position:      r.Position,
		ContentURL:    r.ContentURL,
		PassThreshold: r.PassThreshold,
	}
}

func (h *LmsHandler) CreateModule(c *gin.Context) {
	var req LmsModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	module, err := h.lmsService.CreateModule(c.Request.Context(), req.toInput())
	if err != nil {
		response.InternalError(c, "failed to create training module")
		return
	}
	response.Success(c, module)
}

func (h *LmsHandler) UpdateModule(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid module id")
		return
	}

	var req LmsModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	module, err := h.lmsService.UpdateModule(c.Request.Context(), id, req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "training module not found")
			return
		}
		response.InternalError(c, "failed to update training module")
		return
	}
	response.Success(c, module)
}

func (h *LmsHandler) DeleteModule(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid module id")
		return
	}

	if err := h.lmsService.DeleteModule(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "training module not found")
			return
		}
		response.InternalError(c, "failed to delete training module")
		return
	}
	response.Success(c, nil)
}

func (h *LmsHandler) ListModules(c *gin.Context) {
	modules, err := h.lmsService.ListModules(c.Request.Context())
	if err != nil {
		response.InternalError(c, "failed to list training modules")
		return
	}
	response.Success(c, modules)
}

type RecordProgressRequest struct {
	ModuleID uuid.UUID `json:"module_id" binding:"required"`
	Percent  int       `json:"percent"`
}

func (h *LmsHandler) RecordProgress(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "missing authentication")
		return
	}

	var req RecordProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	progress, err := h.lmsService.RecordProgress(c.Request.Context(), userID, req.ModuleID, req.Percent)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "training module not found")
			return
		}
		response.InternalError(c, "failed to record progress")
		return
	}
	response.Success(c, progress)
}

func (h *LmsHandler) Summary(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "missing authentication")
		return
	}

	summary, err := h.lmsService.Summary(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c, "failed to load course summary")
		return
	}
	response.Success(c, summary)
}
