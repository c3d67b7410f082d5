package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"camphq/platform/internal/service"
	"camphq/platform/pkg/response"
)

type PickupHandler struct {
	pickupService service.PickupService
}

func NewPickupHandler(pickupService service.PickupService) *PickupHandler {
	return &PickupHandler{pickupService: pickupService}
}

// GenerateForDay force-expires the day's unused tokens and mints fresh ones
// for every checked-in athlete.
func (h *PickupHandler) GenerateForDay(c *gin.Context) {
	campDayID, ok := parseUUIDParam(c, "dayID")
	if !ok {
		response.BadRequest(c, "invalid camp day id")
		return
	}

	result, err := h.pickupService.GenerateForCampDay(c.Request.Context(), campDayID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "camp day not found")
			return
		}
		response.InternalError(c, "failed to generate pickup tokens")
		return
	}
	response.Success(c, result)
}

type GenerateAthleteTokenRequest struct {
	AthleteID uuid.UUID `json:"athlete_id" binding:"required"`
}

func (h *PickupHandler) GenerateForAthlete(c *gin.Context) {
	campDayID, ok := parseUUIDParam(c, "dayID")
	if !ok {
		response.BadRequest(c, "invalid camp day id")
		return
	}

	var req GenerateAthleteTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	token, err := h.pickupService.GenerateForAthlete(c.Request.Context(), campDayID, req.AthleteID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "athlete not found")
			return
		}
		response.InternalError(c, "failed to generate pickup token")
		return
	}
	response.Success(c, token)
}

type ValidateTokenRequest struct {
	Token     string     `json:"token" binding:"required"`
	CampDayID *uuid.UUID `json:"camp_day_id"`
}

// Validate is read-only: the gate scanner calls it to preview a code.
// Failures come back as data with an error_code, not as HTTP errors.
func (h *PickupHandler) Validate(c *gin.Context) {
	var req ValidateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	result, err := h.pickupService.Validate(c.Request.Context(), req.Token, req.CampDayID)
	if err != nil {
		response.InternalError(c, "failed to validate pickup token")
		return
	}
	response.Success(c, result)
}

type UseTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

func (h *PickupHandler) Use(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "missing authentication")
		return
	}

	var req UseTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	result, err := h.pickupService.Use(c.Request.Context(), req.Token, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPickupTokenInvalid):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrNotCheckedIn):
			response.Conflict(c, "athlete is not checked in")
		default:
			response.InternalError(c, "failed to use pickup token")
		}
		return
	}
	response.Success(c, result)
}

type ManualCheckoutRequest struct {
	AthleteID uuid.UUID `json:"athlete_id" binding:"required"`
	Reason    string    `json:"reason" binding:"required"`
}

func (h *PickupHandler) ManualCheckout(c *gin.Context) {
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

	var req ManualCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	err = h.pickupService.ManualCheckout(c.Request.Context(), campDayID, req.AthleteID, userID, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrManualReasonRequired):
			response.BadRequest(c, "a reason is required for manual checkout")
		case errors.Is(err, service.ErrNotCheckedIn):
			response.Conflict(c, "athlete is not checked in")
		default:
			response.InternalError(c, "failed to check out athlete")
		}
		return
	}
	response.Success(c, nil)
}

func (h *PickupHandler) ListForDay(c *gin.Context) {
	campDayID, ok := parseUUIDParam(c, "dayID")
	if !ok {
		response.BadRequest(c, "invalid camp day id")
		return
	}

	tokens, err := h.pickupService.ListForCampDay(c.Request.Context(), campDayID)
	if err != nil {
		response.InternalError(c, "failed to list pickup tokens")
		return
	}
	response.Success(c, tokens)
}
