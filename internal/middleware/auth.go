package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sellerhub/backoffice-api/internal/api/dto"
	"github.com/sellerhub/backoffice-api/internal/auth"
	"github.com/sellerhub/backoffice-api/internal/domain"
	"github.com/sellerhub/backoffice-api/internal/utils"
)

type AuthMiddleware struct {
	tokens *auth.TokenService
}

func NewAuthMiddleware(tokens *auth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
	}
}

// JWTAuth verifies the bearer access token and stores the claims in both
// the gin context and the request context.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, http.StatusUnauthorized, "authorization header is required")
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			abortWithError(c, http.StatusUnauthorized, "invalid authorization header format")
			return
		}

		claims, err := m.tokens.VerifyAccessToken(bearerToken[1])
		if err != nil {
			abortWithError(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		c.Set(string(utils.ClaimsKey), claims)
		c.Set(string(utils.RoleKey), claims.Role)
		c.Request = c.Request.WithContext(
			context.WithValue(c.Request.Context(), utils.ClaimsKey, claims))
		c.Next()
	}
}

// RequireAdmin rejects callers whose token does not carry the admin role.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := utils.GetClaimsFromContext(c.Request.Context())
		if err != nil {
			abortWithError(c, http.StatusUnauthorized, "no authentication found")
			return
		}

		if claims.Role != domain.RoleAdmin {
			abortWithError(c, http.StatusForbidden, "insufficient permissions")
			return
		}

		c.Next()
	}
}

func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(status, dto.ServiceFromPath(c.Request.URL.Path), message))
}
