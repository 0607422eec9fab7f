package middleware

import (
	"time"

	"construct-erp/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger attaches a request-scoped logger to the request context and
// logs one line per request. It must run after RequestID; user fields are
// filled in once AuthMiddleware has run on the matched route.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		rid := c.GetString(ContextRequestID)

		reqLogger := logger.With(zap.String("request_id", rid))
		c.Request = c.Request.WithContext(contextutil.WithLogger(c.Request.Context(), reqLogger))

		c.Next()

		reqLogger.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_id", c.GetString(ContextUserID)),
			zap.String("role", c.GetString(ContextRole)),
		)
	}
}

// ActorContext copies the authenticated user into the standard context so
// services can log it without knowing about gin.
func ActorContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString(ContextUserID)
		role := c.GetString(ContextRole)

		ctx := contextutil.WithUserID(c.Request.Context(), uid)
		ctx = contextutil.WithRole(ctx, role)
		logger := contextutil.GetLogger(ctx, nil).With(zap.String("user_id", uid), zap.String("role", role))
		ctx = contextutil.WithLogger(ctx, logger)

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
