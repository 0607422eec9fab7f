package auth

import (
	"construct-erp/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc, loginLimiter *middleware.KeyedRateLimiter) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(loginLimiter), handler.Login)
		auth.POST("/logout", handler.Logout)
		auth.GET("/user", authMW, middleware.ExtractUserID(), handler.Me)
		auth.POST("/change-password", authMW, middleware.ExtractUserID(), middleware.RateLimitByUser(loginLimiter), handler.ChangePassword)
	}
}
