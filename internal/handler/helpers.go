package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"camphq/platform/internal/handler/middleware"
	"camphq/platform/internal/model"
	"camphq/platform/internal/repository"
	jwtpkg "camphq/platform/pkg/jwt"
)

var ErrNoClaims = errors.New("claims not found in context")

func getClaimsFromContext(c *gin.Context) (*jwtpkg.Claims, error) {
	claimsVal, exists := c.Get(middleware.ContextKeyUserClaims)
	if !exists {
		return nil, ErrNoClaims
	}
	claims, ok := claimsVal.(*jwtpkg.Claims)
	if !ok {
		return nil, ErrNoClaims
	}
	return claims, nil
}

func getUserIDFromContext(c *gin.Context) (uuid.UUID, error) {
	claims, err := getClaimsFromContext(c)
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(claims.Subject)
}

// currentUser builds the requester identity from token claims. ID and Role
// are all the ownership checks need; no DB round trip.
func currentUser(c *gin.Context) (*model.User, error) {
	claims, err := getClaimsFromContext(c)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, err
	}
	return &model.User{ID: id, Role: model.UserRole(claims.Role)}, nil
}

func parsePage(c *gin.Context) repository.Page {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	return repository.Page{Page: page, PageSize: pageSize}
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func pagedResponse(items interface{}, total int64, page repository.Page) gin.H {
	page = page.Normalized()
	return gin.H{
		"items":     items,
		"total":     total,
		"page":      page.Page,
		"page_size": page.PageSize,
	}
}
