package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"camphq/platform/internal/model"
	"camphq/platform/internal/service"
	"camphq/platform/pkg/response"
)

type AthleteHandler struct {
	athleteService service.AthleteService
}

func NewAthleteHandler(athleteService service.AthleteService) *AthleteHandler {
	return &AthleteHandler{athleteService: athleteService}
}

type AthleteRequest struct {
	FirstName    string `json:"first_name" binding:"required"`
	LastName     string `json:"last_name" binding:"required"`
	BirthDate    string `json:"birth_date" binding:"required"` // YYYY-MM-DD
	Gender       string `json:"gender"`
	MedicalNotes string `json:"medical_notes"`
	PhotoURL     string `json:"photo_url"`
}

func (r AthleteRequest) toInput() (service.AthleteInput, error) {
	birthDate, err := time.Parse("2006-01-02", r.BirthDate)
	if err != nil {
		return service.AthleteInput{}, err
	}
	return service.AthleteInput{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		BirthDate:    birthDate,
		Gender:       r.Gender,
		MedicalNotes: r.MedicalNotes,
		PhotoURL:     r.PhotoURL,
	}, nil
}

func (h *AthleteHandler) Create(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "missing authentication")
		return
	}

	var req AthleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	input, err := req.toInput()
	if err != nil {
		response.BadRequest(c, "invalid birth_date, expected YYYY-MM-DD")
		return
	}

	athlete, err := h.athleteService.Create(c.Request.Context(), userID, input)
	if err != nil {
		response.InternalError(c, "failed to create athlete")
		return
	}
	response.Success(c, athlete)
}

func (h *AthleteHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid athlete id")
		return
	}
	requester, err := currentUser(c)
	if err != nil {
		response.Unauthorized(c, "missing authentication")
		return
	}

	athlete, err := h.athleteService.Get(c.Request.Context(), id, requester)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			response.NotFound(c, "athlete not found")
		case errors.Is(err, service.ErrNotOwned):
			response.Forbidden(c, "not your athlete")
		default:
			response.InternalError(c, "failed to load athlete")
		}
		return
	}
	response.Success(c, athlete)
}

func (h *AthleteHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid athlete id")
		return
	}
	requester, err := currentUser(c)
	if err != nil {
		response.Unauthorized(c, "missing authentication")
		return
	}

	var req AthleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	input, err := req.toInput()
	if err != nil {
		response.BadRequest(c, "invalid birth_date, expected YYYY-MM-DD")
		return
	}

	athlete, err := h.athleteService.Update(c.Request.Context(), id, requester, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			response.NotFound(c, "athlete not found")
		case errors.Is(err, service.ErrNotOwned):
			response.Forbidden(c, "not your athlete")
		default:
			response.InternalError(c, "failed to update athlete")
		}
		return
	}
	response.Success(c, athlete)
}

func (h *AthleteHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid athlete id")
		return
	}
	requester, err := currentUser(c)
	if err != nil {
		response.Unauthorized(c, "missing authentication")
		return
	}

	if err := h.athleteService.Delete(c.Request.Context(), id, requester); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			response.NotFound(c, "athlete not found")
		case errors.Is(err, service.ErrNotOwned):
			response.Forbidden(c, "not your athlete")
		default:
			response.InternalError(c, "failed to delete athlete")
		}
		return
	}
	response.Success(c, nil)
}

// ListMine returns the caller's athletes.
func (h *AthleteHandler) ListMine(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "missing authentication")
		return
	}

	athletes, err := h.athleteService.ListByParent(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c, "failed to list athletes")
		return
	}
	response.Success(c, athletes)
}

// List is the staff-facing paged list across all parents.
func (h *AthleteHandler) List(c *gin.Context) {
	page := parsePage(c)
	athletes, total, err := h.athleteService.List(c.Request.Context(), page)
	if err != nil {
		response.InternalError(c, "failed to list athletes")
		return
	}
	response.Success(c, pagedResponse(athletes, total, page))
}

type RegisterAthleteRequest struct {
	CampID    uuid.UUID `json:"camp_id" binding:"required"`
	AthleteID uuid.UUID `json:"athlete_id" binding:"required"`
}

func (h *AthleteHandler) RegisterForCamp(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "missing authentication")
		return
	}

	var req RegisterAthleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	reg, err := h.athleteService.Register(c.Request.Context(), req.CampID, req.AthleteID, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			response.NotFound(c, "camp or athlete not found")
		case errors.Is(err, service.ErrNotOwned):
			response.Forbidden(c, "not your athlete")
		default:
			response.InternalError(c, "failed to register athlete")
		}
		return
	}
	response.Success(c, reg)
}

func (h *AthleteHandler) ListMyRegistrations(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "missing authentication")
		return
	}

	regs, err := h.athleteService.ListRegistrationsByParent(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c, "failed to list registrations")
		return
	}
	response.Success(c, regs)
}

type RegistrationStatusRequest struct {
	Status          model.RegistrationStatus `json:"status" binding:"required"`
	AmountPaidCents int64                    `json:"amount_paid_cents"`
}

// UpdateRegistrationStatus is staff-only: confirm or cancel a registration.
func (h *AthleteHandler) UpdateRegistrationStatus(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid registration id")
		return
	}

	var req RegistrationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	reg, err := h.athleteService.UpdateRegistrationStatus(c.Request.Context(), id, req.Status, req.AmountPaidCents)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			response.NotFound(c, "registration not found")
		case errors.Is(err, service.ErrInvalidStatusChange):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, "failed to update registration")
		}
		return
	}
	response.Success(c, reg)
}
