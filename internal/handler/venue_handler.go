package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"camphq/platform/internal/service"
	"camphq/platform/pkg/response"
)

type VenueHandler struct {
	venueService service.VenueService
}

func NewVenueHandler(venueService service.VenueService) *VenueHandler {
	return &VenueHandler{venueService: venueService}
}

type VenueRequest struct {
	LicenseeID uuid.UUID `json:"licensee_id"`
	Name       string    `json:"name" binding:"required"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	PostalCode string    `json:"postal_code"`
	Capacity   int       `json:"capacity"`
	Indoor     *bool     `json:"indoor"`
}

func (r VenueRequest) toInput() service.VenueInput {
	return service.VenueInput{
		Name:       r.Name,
		Address:    r.Address,
		City:       r.City,
		State:      r.State,
		PostalCode: r.PostalCode,
		Capacity:   r.Capacity,
		Indoor:     r.Indoor,
	}
}

func (h *VenueHandler) Create(c *gin.Context) {
	var req VenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	venue, err := h.venueService.Create(c.Request.Context(), req.LicenseeID, req.toInput())
	if err != nil {
		response.InternalError(c, "failed to create venue")
		return
	}
	response.Success(c, venue)
}

func (h *VenueHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid venue id")
		return
	}

	venue, err := h.venueService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "venue not found")
			return
		}
		response.InternalError(c, "failed to load venue")
		return
	}
	response.Success(c, venue)
}

func (h *VenueHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid venue id")
		return
	}

	var req VenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	venue, err := h.venueService.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "venue not found")
			return
		}
		response.InternalError(c, "failed to update venue")
		return
	}
	response.Success(c, venue)
}

func (h *VenueHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid venue id")
		return
	}

	if err := h.venueService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "venue not found")
			return
		}
		response.InternalError(c, "failed to delete venue")
		return
	}
	response.Success(c, nil)
}

func (h *VenueHandler) List(c *gin.Context) {
	licenseeID, err := uuid.Parse(c.Query("licensee_id"))
	if err != nil {
		response.BadRequest(c, "licensee_id is required")
		return
	}
	page := parsePage(c)

	venues, total, err := h.venueService.List(c.Request.Context(), licenseeID, page)
	if err != nil {
		response.InternalError(c, "failed to list venues")
		return
	}
	response.Success(c, pagedResponse(venues, total, page))
}
