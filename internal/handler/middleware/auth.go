package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	jwtpkg "camphq/platform/pkg/jwt"
	"camphq/platform/pkg/response"
)

// ContextKeyUserClaims is where JWTAuth stores the validated access-token
// claims; handlers read it to identify the parent or staff member.
const ContextKeyUserClaims = "user_claims"

// JWTAuth validates the bearer access token and stashes its claims on the
// request context. Refresh tokens are rejected here: they are only good at
// the /auth/refresh endpoint.
func JWTAuth(jwtManager *jwtpkg.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			response.Unauthorized(c, "missing or malformed authorization header")
			c.Abort()
			return
		}

		claims, err := jwtManager.Validate(token)
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}
		if claims.TokenType != jwtpkg.TokenTypeAccess {
			response.Unauthorized(c, "access token required")
			c.Abort()
			return
		}

		c.Set(ContextKeyUserClaims, claims)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
