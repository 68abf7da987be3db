package middleware

import (
	"net/http"

	portssvc "github.com/ckeeling/splitledger/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// RequireEditor creates a Gin middleware that rejects mutating requests from
// users without the editor role. It must run after AuthMiddleware.
func RequireEditor(userService portssvc.UserReaderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			logger.Warn("User ID missing from context in editor check")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		user, err := userService.GetUserByID(c.Request.Context(), userID)
		if err != nil {
			logger.Error("Failed to load user for editor check", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		if !user.IsEditor() {
			logger.Warn("Write rejected for non-editor user")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Editor role required"})
			return
		}

		c.Next()
	}
}
