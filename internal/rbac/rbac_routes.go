package rbac

import (
	"construct-erp/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth gin.HandlerFunc) {
	group := r.Group("/rbac")
	group.Use(auth, middleware.ExtractUserID())
	{
		group.GET("/permissions", handler.Permissions)
		group.POST("/enforce", handler.Enforce)
	}
}
