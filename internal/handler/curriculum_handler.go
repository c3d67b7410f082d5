package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"camphq/platform/internal/service"
	"camphq/platform/pkg/response"
)

type CurriculumHandler struct {
	curriculumService service.CurriculumService
}

func NewCurriculumHandler(curriculumService service.CurriculumService) *CurriculumHandler {
	return &CurriculumHandler{curriculumService: curriculumService}
}

type CurriculumTemplateRequest struct {
	LicenseeID uuid.UUID `json:"licensee_id"`
	Name       string    `json:"name" binding:"required"`
	Sport      string    `json:"sport" binding:"required"`
	AgeMin     int       `json:"age_min"`
	AgeMax     int       `json:"age_max"`
}

func (h *CurriculumHandler) CreateTemplate(c *gin.Context) {
	var req CurriculumTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	tpl, err := h.curriculumService.CreateTemplate(c.Request.Context(), req.LicenseeID, service.CurriculumTemplateInput{
		Name:   req.Name,
		Sport:  req.Sport,
		AgeMin: req.AgeMin,
		AgeMax: req.AgeMax,
	})
	if err != nil {
		response.InternalError(c, "failed to create curriculum template")
		return
	}
	response.Success(c, tpl)
}

func (h *CurriculumHandler) GetTemplate(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid template id")
		return
	}

	tpl, err := h.curriculumService.GetTemplate(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "curriculum template not found")
			return
		}
		response.InternalError(c, "failed to load curriculum template")
		return
	}
	response.Success(c, tpl)
}

func (h *CurriculumHandler) UpdateTemplate(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid template id")
		return
	}

	var req CurriculumTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	tpl, err := h.curriculumService.UpdateTemplate(c.Request.Context(), id, service.CurriculumTemplateInput{
		Name:   req.Name,
		Sport:  req.Sport,
		AgeMin: req.AgeMin,
		AgeMax: req.AgeMax,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "curriculum template not found")
			return
		}
		response.InternalError(c, "failed to update curriculum template")
		return
	}
	response.Success(c, tpl)
}

func (h *CurriculumHandler) DeleteTemplate(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid template id")
		return
	}

	if err := h.curriculumService.DeleteTemplate(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "curriculum template not found")
			return
		}
		response.InternalError(c, "failed to delete curriculum template")
		return
	}
	response.Success(c, nil)
}

func (h *CurriculumHandler) ListTemplates(c *gin.Context) {
	licenseeID, err := uuid.Parse(c.Query("licensee_id"))
	if err != nil {
		response.BadRequest(c, "licensee_id is required")
		return
	}
	page := parsePage(c)

	tpls, total, err := h.curriculumService.ListTemplates(c.Request.Context(), licenseeID, page)
	if err != nil {
		response.InternalError(c, "failed to list curriculum templates")
		return
	}
	response.Success(c, pagedResponse(tpls, total, page))
}

type CurriculumBlockRequest struct {
	Title           string `json:"title" binding:"required"`
	DurationMinutes int    `json:"duration_minutes"`
	Description     string `json:"description"`
	VideoURL        string `json:"video_url"`
	Position        int    `json:"position"`
}

func (r CurriculumBlockRequest) toInput() service.CurriculumBlockInput {
	return service.CurriculumBlockInput{
		Title:           r.Title,
		DurationMinutes: r.DurationMinutes,
		Description:     r.Description,
		VideoURL:        r.VideoURL,
		Position:        r.Position,
	}
}

func (h *CurriculumHandler) AddBlock(c *gin.Context) {
	templateID, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid template id")
		return
	}

	var req CurriculumBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	block, err := h.curriculumService.AddBlock(c.Request.Context(), templateID, req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "curriculum template not found")
			return
		}
		response.InternalError(c, "failed to add curriculum block")
		return
	}
	response.Success(c, block)
}

func (h *CurriculumHandler) UpdateBlock(c *gin.Context) {
	blockID, ok := parseUUIDParam(c, "blockID")
	if !ok {
		response.BadRequest(c, "invalid block id")
		return
	}

	var req CurriculumBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	block, err := h.curriculumService.UpdateBlock(c.Request.Context(), blockID, req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "curriculum block not found")
			return
		}
		response.InternalError(c, "failed to update curriculum block")
		return
	}
	response.Success(c, block)
}

func (h *CurriculumHandler) DeleteBlock(c *gin.Context) {
	blockID, ok := parseUUIDParam(c, "blockID")
	if !ok {
		response.BadRequest(c, "invalid block id")
		return
	}

	if err := h.curriculumService.DeleteBlock(c.Request.Context(), blockID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "curriculum block not found")
			return
		}
		response.InternalError(c, "failed to delete curriculum block")
		return
	}
	response.Success(c, nil)
}

func (h *CurriculumHandler) ListBlocks(c *gin.Context) {
	templateID, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid template id")
		return
	}

	blocks, err := h.curriculumService.ListBlocks(c.Request.Context(), templateID)
	if err != nil {
		response.InternalError(c, "failed to list curriculum blocks")
		return
	}
	response.Success(c, blocks)
}
