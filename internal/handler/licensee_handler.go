package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"camphq/platform/internal/model"
	"camphq/platform/internal/service"
	"camphq/platform/pkg/response"
)

type LicenseeHandler struct {
	licenseeService service.LicenseeService
}

func NewLicenseeHandler(licenseeService service.LicenseeService) *LicenseeHandler {
	return &LicenseeHandler{licenseeService: licenseeService}
}

type TerritoryRequest struct {
	Name    string `json:"name" binding:"required"`
	Region  string `json:"region"`
	Country string `json:"country"`
}

func (h *LicenseeHandler) CreateTerritory(c *gin.Context) {
	var req TerritoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	territory, err := h.licenseeService.CreateTerritory(c.Request.Context(), req.Name, req.Region, req.Country)
	if err != nil {
		response.InternalError(c, "failed to create territory")
		return
	}
	response.Success(c, territory)
}

func (h *LicenseeHandler) ListTerritories(c *gin.Context) {
	territories, err := h.licenseeService.ListTerritories(c.Request.Context())
	if err != nil {
		response.InternalError(c, "failed to list territories")
		return
	}
	response.Success(c, territories)
}

func (h *LicenseeHandler) DeleteTerritory(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid territory id")
		return
	}

	if err := h.licenseeService.DeleteTerritory(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			response.NotFound(c, "territory not found")
		case errors.Is(err, service.ErrTerritoryHasLicensee):
			response.Conflict(c, "territory has an active licensee")
		default:
			response.InternalError(c, "failed to delete territory")
		}
		return
	}
	response.Success(c, nil)
}

func (h *LicenseeHandler) GetLicensee(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid licensee id")
		return
	}

	licensee, err := h.licenseeService.GetLicensee(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "licensee not found")
			return
		}
		response.InternalError(c, "failed to load licensee")
		return
	}
	response.Success(c, licensee)
}

func (h *LicenseeHandler) ListLicensees(c *gin.Context) {
	page := parsePage(c)
	licensees, total, err := h.licenseeService.ListLicensees(c.Request.Context(), page)
	if err != nil {
		response.InternalError(c, "failed to list licensees")
		return
	}
	response.Success(c, pagedResponse(licensees, total, page))
}

type SubmitApplicationRequest struct {
	TerritoryID    uuid.UUID `json:"territory_id" binding:"required"`
	BusinessName   string    `json:"business_name" binding:"required"`
	ApplicantName  string    `json:"applicant_name" binding:"required"`
	ApplicantEmail string    `json:"applicant_email" binding:"required,email"`
	Phone          string    `json:"phone"`
	Message        string    `json:"message"`
}

// SubmitApplication is the public entry point for prospective licensees.
func (h *LicenseeHandler) SubmitApplication(c *gin.Context) {
	var req SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	app, err := h.licenseeService.SubmitApplication(c.Request.Context(), service.ApplicationInput{
		TerritoryID:    req.TerritoryID,
		BusinessName:   req.BusinessName,
		ApplicantName:  req.ApplicantName,
		ApplicantEmail: req.ApplicantEmail,
		Phone:          req.Phone,
		Message:        req.Message,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "territory not found")
			return
		}
		response.InternalError(c, "failed to submit application")
		return
	}
	response.Success(c, app)
}

func (h *LicenseeHandler) GetApplication(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid application id")
		return
	}

	app, err := h.licenseeService.GetApplication(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "application not found")
			return
		}
		response.InternalError(c, "failed to load application")
		return
	}
	response.Success(c, app)
}

func (h *LicenseeHandler) ListApplications(c *gin.Context) {
	page := parsePage(c)

	var status *model.ApplicationStatus
	if raw := c.Query("status"); raw != "" {
		s := model.ApplicationStatus(raw)
		status = &s
	}

	apps, total, err := h.licenseeService.ListApplications(c.Request.Context(), status, page)
	if err != nil {
		response.InternalError(c, "failed to list applications")
		return
	}
	response.Success(c, pagedResponse(apps, total, page))
}

type ReviewApplicationRequest struct {
	Status model.ApplicationStatus `json:"status" binding:"required"`
	Notes  string                  `json:"notes"`
}

func (h *LicenseeHandler) ReviewApplication(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid application id")
		return
	}
	userID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "missing authentication")
		return
	}

	var req ReviewApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	app, err := h.licenseeService.Review(c.Request.Context(), id, req.Status, req.Notes, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			response.NotFound(c, "application not found")
		case errors.Is(err, service.ErrApplicationFinalized):
			response.Conflict(c, "application has already been decided")
		case errors.Is(err, service.ErrInvalidStatusChange):
			response.BadRequest(c, "invalid status transition")
		default:
			response.InternalError(c, "failed to review application")
		}
		return
	}
	response.Success(c, app)
}
