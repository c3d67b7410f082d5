package middleware

import (
	"github.com/gin-gonic/gin"

	"camphq/platform/internal/model"
	jwtpkg "camphq/platform/pkg/jwt"
	"camphq/platform/pkg/response"
)

// RoleAuth checks that the authenticated user holds one of the given roles.
// Must be used after JWTAuth middleware.
func RoleAuth(roles ...model.UserRole) gin.HandlerFunc {
	allowed := make(map[model.UserRole]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		claimsVal, exists := c.Get(ContextKeyUserClaims)
		if !exists {
			response.Unauthorized(c, "missing authentication")
			c.Abort()
			return
		}
		claims, ok := claimsVal.(*jwtpkg.Claims)
		if !ok {
			response.Unauthorized(c, "invalid claims")
			c.Abort()
			return
		}

		if _, ok := allowed[model.UserRole(claims.Role)]; !ok {
			response.Forbidden(c, "insufficient role")
			c.Abort()
			return
		}

		c.Next()
	}
}
