package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"camphq/platform/internal/model"
	"camphq/platform/internal/service"
	"camphq/platform/pkg/response"
)

// UserHandler covers admin-side account management.
type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type CreateUserRequest struct {
	Email      string     `json:"email" binding:"required,email"`
	Password   string     `json:"password" binding:"required,min=8"`
	FirstName  string     `json:"first_name" binding:"required"`
	LastName   string     `json:"last_name" binding:"required"`
	Phone      string     `json:"phone"`
	Role       string     `json:"role" binding:"required"`
	LicenseeID *uuid.UUID `json:"licensee_id"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	role := model.UserRole(req.Role)
	switch role {
	case model.RoleAdmin, model.RoleLicenseeOwner, model.RoleCoach, model.RoleParent:
	default:
		response.BadRequest(c, "unknown role")
		return
	}

	user, err := h.userService.Create(c.Request.Context(), service.CreateUserInput{
		Email:      req.Email,
		Password:   req.Password,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		Role:       role,
		LicenseeID: req.LicenseeID,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyExists) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, "failed to create user")
		return
	}
	response.Success(c, user)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid user id")
		return
	}

	user, err := h.userService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.InternalError(c, "failed to load user")
		return
	}
	response.Success(c, user)
}

func (h *UserHandler) List(c *gin.Context) {
	page := parsePage(c)
	users, total, err := h.userService.List(c.Request.Context(), page)
	if err != nil {
		response.InternalError(c, "failed to list users")
		return
	}
	response.Success(c, pagedResponse(users, total, page))
}

type UpdateUserRequest struct {
	FirstName  *string    `json:"first_name"`
	LastName   *string    `json:"last_name"`
	Phone      *string    `json:"phone"`
	Role       *string    `json:"role"`
	LicenseeID *uuid.UUID `json:"licensee_id"`
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid user id")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	input := service.UpdateUserInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		LicenseeID: req.LicenseeID,
	}
	if req.Role != nil {
		role := model.UserRole(*req.Role)
		switch role {
		case model.RoleAdmin, model.RoleLicenseeOwner, model.RoleCoach, model.RoleParent:
		default:
			response.BadRequest(c, "unknown role")
			return
		}
		input.Role = &role
	}

	user, err := h.userService.Update(c.Request.Context(), id, input)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.InternalError(c, "failed to update user")
		return
	}
	response.Success(c, user)
}

func (h *UserHandler) Disable(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid user id")
		return
	}

	if err := h.userService.Disable(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.InternalError(c, "failed to disable user")
		return
	}
	response.Success(c, nil)
}

func (h *UserHandler) Enable(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid user id")
		return
	}

	if err := h.userService.Enable(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.InternalError(c, "failed to enable user")
		return
	}
	response.Success(c, nil)
}
