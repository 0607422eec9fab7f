package attendance

import (
	"construct-erp/internal/domain"
	"construct-erp/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts /attendance. authMW must set the identity keys read
// by actorFrom; idempotency may be nil.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, authMW gin.HandlerFunc, rbacService middleware.RBACService, idempotency gin.HandlerFunc) {
	allow := func(action string) gin.HandlerFunc {
		return middleware.RBACAuthorize(rbacService, domain.ResourceAttendance, action)
	}
	if idempotency == nil {
		idempotency = func(c *gin.Context) { c.Next() }
	}

	att := r.Group("/attendance")
	att.Use(authMW, middleware.ActorContext())
	{
		att.POST("/submit", allow(domain.ActionSubmit), idempotency, h.Submit)
		att.POST("/save-draft", allow(domain.ActionSubmit), h.SaveDraft)
		att.GET("/check/:date", allow(domain.ActionCheck), h.CheckSubmission)

		att.GET("/pending-review", allow(domain.ActionReview), h.PendingReview)
		att.POST("/review/:id", allow(domain.ActionReview), h.Review)

		att.GET("/pending-admin", allow(domain.ActionApprove), h.PendingAdmin)
		att.POST("/admin-approve/:id", allow(domain.ActionApprove), h.Approve)
		att.POST("/reject/:id", allow(domain.ActionReject), h.Reject)
		att.PUT("/:id", allow(domain.ActionEdit), h.Update)

		att.GET("/approved", allow(domain.ActionListAll), h.Approved)
		att.GET("/foreman/:foremanId", allow(domain.ActionListAll), h.ByForeman)
		att.GET("/foreman/:foremanId/current", allow(domain.ActionListAll), h.ForemanCurrent)
		att.GET("/foreman/:foremanId/history", allow(domain.ActionListAll), h.ForemanHistory)

		att.GET("/recent", allow(domain.ActionRead), h.Recent)
	}
}
