package middleware

import (
	"construct-erp/internal/timewindow"

	"github.com/gin-gonic/gin"
)

const ContextWindow = "window"

// TimeWindow freezes the attendance window once per request.
func TimeWindow(resolver *timewindow.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := resolver.Snapshot()
		c.Set(ContextWindow, snap)
		c.Request = c.Request.WithContext(timewindow.WithSnapshot(c.Request.Context(), snap))
		c.Next()
	}
}
