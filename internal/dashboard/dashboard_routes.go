package dashboard

import (
	"construct-erp/internal/domain"
	"construct-erp/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, authMW gin.HandlerFunc, rbacService middleware.RBACService) {
	d := r.Group("/dashboard")
	d.Use(authMW, middleware.ActorContext())
	{
		d.GET("/stats", middleware.RBACAuthorize(rbacService, domain.ResourceDashboard, domain.ActionRead), h.Stats)
	}
}
