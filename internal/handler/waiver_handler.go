package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"camphq/platform/internal/service"
	"camphq/platform/pkg/response"
)

type WaiverHandler struct {
	waiverService service.WaiverService
}

func NewWaiverHandler(waiverService service.WaiverService) *WaiverHandler {
	return &WaiverHandler{waiverService: waiverService}
}

type CreateWaiverTemplateRequest struct {
	LicenseeID uuid.UUID `json:"licensee_id" binding:"required"`
	Title      string    `json:"title" binding:"required"`
	Content    string    `json:"content" binding:"required"`
}

func (h *WaiverHandler) CreateTemplate(c *gin.Context) {
	var req CreateWaiverTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	tpl, err := h.waiverService.CreateTemplate(c.Request.Context(), req.LicenseeID, req.Title, req.Content)
	if err != nil {
		response.InternalError(c, "failed to create waiver template")
		return
	}
	response.Success(c, tpl)
}

func (h *WaiverHandler) GetTemplate(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid template id")
		return
	}

	tpl, err := h.waiverService.GetTemplate(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "waiver template not found")
			return
		}
		response.InternalError(c, "failed to load waiver template")
		return
	}
	response.Success(c, tpl)
}

type UpdateWaiverTemplateRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Active  *bool  `json:"active"`
}

func (h *WaiverHandler) UpdateTemplate(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid template id")
		return
	}

	var req UpdateWaiverTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	tpl, err := h.waiverService.UpdateTemplate(c.Request.Context(), id, service.WaiverTemplateInput{
		Title:   req.Title,
		Content: req.Content,
		Active:  req.Active,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "waiver template not found")
			return
		}
		response.InternalError(c, "failed to update waiver template")
		return
	}
	response.Success(c, tpl)
}

func (h *WaiverHandler) DeleteTemplate(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid template id")
		return
	}

	if err := h.waiverService.DeleteTemplate(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "waiver template not found")
			return
		}
		response.InternalError(c, "failed to delete waiver template")
		return
	}
	response.Success(c, nil)
}

func (h *WaiverHandler) ListTemplates(c *gin.Context) {
	licenseeID, err := uuid.Parse(c.Query("licensee_id"))
	if err != nil {
		response.BadRequest(c, "licensee_id is required")
		return
	}

	tpls, err := h.waiverService.ListTemplates(c.Request.Context(), licenseeID)
	if err != nil {
		response.InternalError(c, "failed to list waiver templates")
		return
	}
	response.Success(c, tpls)
}

type SignWaiverRequest struct {
	TemplateID uuid.UUID `json:"template_id" binding:"required"`
	AthleteID  uuid.UUID `json:"athlete_id" binding:"required"`
}

// Sign records acceptance of the template's current version for an athlete.
func (h *WaiverHandler) Sign(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "missing authentication")
		return
	}

	var req SignWaiverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	signing, err := h.waiverService.Sign(c.Request.Context(), req.TemplateID, req.AthleteID, userID, c.ClientIP())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			response.NotFound(c, "waiver template or athlete not found")
		case errors.Is(err, service.ErrNotOwned):
			response.Forbidden(c, "not your athlete")
		default:
			response.InternalError(c, "failed to sign waiver")
		}
		return
	}
	response.Success(c, signing)
}

// CampStatus reports every confirmed athlete's standing against the current
// template version.
func (h *WaiverHandler) CampStatus(c *gin.Context) {
	templateID, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid template id")
		return
	}
	campID, err := uuid.Parse(c.Query("camp_id"))
	if err != nil {
		response.BadRequest(c, "camp_id is required")
		return
	}

	status, err := h.waiverService.CampStatus(c.Request.Context(), templateID, campID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "waiver template not found")
			return
		}
		response.InternalError(c, "failed to load waiver status")
		return
	}
	response.Success(c, status)
}
