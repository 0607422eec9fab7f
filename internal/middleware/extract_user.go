package middleware

import (
	"construct-erp/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

// ExtractUserID re-publishes the authenticated user id as user_id_validated
// once it is known to be a non-empty string.
func ExtractUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get(ContextUserID)
		if !exists {
			abortWith(c, apperror.ErrUnauthorized)
			return
		}

		userIDStr, ok := userID.(string)
		if !ok || userIDStr == "" {
			abortWith(c, apperror.ErrUnauthorized)
			return
		}

		c.Set("user_id_validated", userIDStr)
		c.Next()
	}
}
