package middleware

import (
	"strings"

	"namedesk_backend/internal/auth"
	"namedesk_backend/internal/logger"
	"namedesk_backend/internal/models"
	"namedesk_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware rejects requests without a valid bearer token and stores
// the claims in the gin context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			c.Abort()
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RoleMiddleware additionally requires a specific role on top of
// AuthMiddleware.
func RoleMiddleware(requiredRole models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			apperrors.HandleError(c, apperrors.NewForbiddenError("Access denied: no role"))
			c.Abort()
			return
		}

		role, ok := roleVal.(string)
		if !ok {
			apperrors.HandleError(c, apperrors.NewForbiddenError("Access denied: invalid role type"))
			c.Abort()
			return
		}

		if models.UserRole(role) != requiredRole {
			apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminMiddleware is RoleMiddleware fixed to the admin flag.
func AdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware(models.UserRoleAdmin)
}

// IsAdmin reports whether the authenticated caller carries the admin role.
func IsAdmin(c *gin.Context) bool {
	roleVal, exists := c.Get("role")
	if !exists {
		return false
	}
	role, ok := roleVal.(string)
	return ok && models.UserRole(role) == models.UserRoleAdmin
}

// GetUserID extracts the authenticated user ID from the gin context.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("userID")
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}

	return id
}
