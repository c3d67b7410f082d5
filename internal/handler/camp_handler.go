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

type CampHandler struct {
	campService service.CampService
}

func NewCampHandler(campService service.CampService) *CampHandler {
	return &CampHandler{campService: campService}
}

type CampRequest struct {
	LicenseeID uuid.UUID `json:"licensee_id" binding:"required"`
	VenueID    uuid.UUID `json:"venue_id" binding:"required"`
	Name       string    `json:"name" binding:"required"`
	Sport      string    `json:"sport" binding:"required"`
	StartDate  string    `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate    string    `json:"end_date" binding:"required"`
	Capacity   int       `json:"capacity"`
	PriceCents int64     `json:"price_cents"`
	Status     string    `json:"status"`
}

func (r CampRequest) toInput() (service.CampInput, error) {
	start, err := time.Parse("2006-01-02", r.StartDate)
	if err != nil {
		return service.CampInput{}, err
	}
	end, err := time.Parse("2006-01-02", r.EndDate)
	if err != nil {
		return service.CampInput{}, err
	}
	return service.CampInput{
		LicenseeID: r.LicenseeID,
		VenueID:    r.VenueID,
		Name:       r.Name,
		Sport:      r.Sport,
		StartDate:  start,
		EndDate:    end,
		Capacity:   r.Capacity,
		PriceCents: r.PriceCents,
		Status:     model.CampStatus(r.Status),
	}, nil
}

func (h *CampHandler) Create(c *gin.Context) {
	var req CampRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	input, err := req.toInput()
	if err != nil {
		response.BadRequest(c, "invalid date, expected YYYY-MM-DD")
		return
	}

	camp, err := h.campService.Create(c.Request.Context(), input)
	if err != nil {
		response.InternalError(c, "failed to create camp")
		return
	}
	response.Success(c, camp)
}

func (h *CampHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid camp id")
		return
	}

	camp, err := h.campService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "camp not found")
			return
		}
		response.InternalError(c, "failed to load camp")
		return
	}
	response.Success(c, camp)
}

func (h *CampHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid camp id")
		return
	}

	var req CampRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	input, err := req.toInput()
	if err != nil {
		response.BadRequest(c, "invalid date, expected YYYY-MM-DD")
		return
	}

	camp, err := h.campService.Update(c.Request.Context(), id, input)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "camp not found")
			return
		}
		response.InternalError(c, "failed to update camp")
		return
	}
	response.Success(c, camp)
}

func (h *CampHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid camp id")
		return
	}

	if err := h.campService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "camp not found")
			return
		}
		response.InternalError(c, "failed to delete camp")
		return
	}
	response.Success(c, nil)
}

func (h *CampHandler) List(c *gin.Context) {
	page := parsePage(c)

	var licenseeID *uuid.UUID
	if raw := c.Query("licensee_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "invalid licensee_id")
			return
		}
		licenseeID = &id
	}

	camps, total, err := h.campService.List(c.Request.Context(), licenseeID, page)
	if err != nil {
		response.InternalError(c, "failed to list camps")
		return
	}
	response.Success(c, pagedResponse(camps, total, page))
}

type CampDayRequest struct {
	Date  string `json:"date" binding:"required"` // YYYY-MM-DD
	Notes string `json:"notes"`
}

func (h *CampHandler) AddDay(c *gin.Context) {
	campID, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid camp id")
		return
	}

	var req CampDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		response.BadRequest(c, "invalid date, expected YYYY-MM-DD")
		return
	}

	day, err := h.campService.AddDay(c.Request.Context(), campID, date, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			response.NotFound(c, "camp not found")
		case errors.Is(err, service.ErrCampDayOutsideCamp):
			response.BadRequest(c, "date falls outside the camp date range")
		default:
			response.InternalError(c, "failed to add camp day")
		}
		return
	}
	response.Success(c, day)
}

func (h *CampHandler) ListDays(c *gin.Context) {
	campID, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid camp id")
		return
	}

	days, err := h.campService.ListDays(c.Request.Context(), campID)
	if err != nil {
		response.InternalError(c, "failed to list camp days")
		return
	}
	response.Success(c, days)
}

type CheckInRequest struct {
	AthleteID uuid.UUID `json:"athlete_id" binding:"required"`
}

func (h *CampHandler) CheckIn(c *gin.Context) {
	campDayID, ok := parseUUIDParam(c, "dayID")
	if !ok {
		response.BadRequest(c, "invalid camp day id")
		return
	}
	userID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "missing authentication")
		return
	}

	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	att, err := h.campService.CheckIn(c.Request.Context(), campDayID, req.AthleteID, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			response.NotFound(c, "camp day or athlete not found")
		case errors.Is(err, service.ErrNotRegistered):
			response.BadRequest(c, "athlete has no confirmed registration for this camp")
		case errors.Is(err, service.ErrAlreadyCheckedIn):
			response.Conflict(c, "athlete is already checked in")
		default:
			response.InternalError(c, "failed to check in athlete")
		}
		return
	}
	response.Success(c, att)
}

func (h *CampHandler) Roster(c *gin.Context) {
	campDayID, ok := parseUUIDParam(c, "dayID")
	if !ok {
		response.BadRequest(c, "invalid camp day id")
		return
	}

	roster, err := h.campService.Roster(c.Request.Context(), campDayID)
	if err != nil {
		response.InternalError(c, "failed to load roster")
		return
	}
	response.Success(c, roster)
}
