package attendance

import (
	"net/http"

	"construct-erp/internal/middleware"
	"construct-erp/internal/shared/apperror"
	"construct-erp/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("attendance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.handler")
	}
	return &Handler{service: service, rdb: rdb, logger: l}
}

func actorFrom(c *gin.Context) Actor {
	return Actor{
		ID:     c.GetString(middleware.ContextUserID),
		Role:   c.GetString(middleware.ContextRole),
		SiteID: c.GetString(middleware.ContextSiteID),
		Name:   c.GetString(middleware.ContextName),
	}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("attendance request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message)
}

func (h *Handler) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return false
	}
	return true
}

func (h *Handler) Submit(c *gin.Context) {
	defer middleware.ReleaseIdempotencyLock(c, h.rdb)

	var req SubmitAttendanceRequest
	if !h.bind(c, &req) {
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), actorFrom(c), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	middleware.StoreIdempotentResponse(c, h.rdb, http.StatusCreated, response.Envelope{
		Success: true,
		Data:    resp,
		Message: "Attendance submitted successfully",
	})
	response.Success(c, http.StatusCreated, resp, "Attendance submitted successfully")
}

func (h *Handler) SaveDraft(c *gin.Context) {
	var req SubmitAttendanceRequest
	if !h.bind(c, &req) {
		return
	}

	if err := h.service.SaveDraft(c.Request.Context(), actorFrom(c), req); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, nil, "Draft saved successfully")
}

func (h *Handler) CheckSubmission(c *gin.Context) {
	resp, err := h.service.CheckSubmission(c.Request.Context(), actorFrom(c), c.Param("date"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, "")
}

func (h *Handler) PendingReview(c *gin.Context) {
	resp, err := h.service.PendingReview(c.Request.Context(), actorFrom(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, "")
}

func (h *Handler) Review(c *gin.Context) {
	var req ReviewAttendanceRequest
	if !h.bind(c, &req) {
		return
	}

	resp, err := h.service.Review(c.Request.Context(), actorFrom(c), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, "Attendance reviewed successfully")
}

func (h *Handler) PendingAdmin(c *gin.Context) {
	resp, err := h.service.PendingAdmin(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, "")
}

func (h *Handler) Approve(c *gin.Context) {
	var req ApproveAttendanceRequest
	if c.Request.ContentLength != 0 && !h.bind(c, &req) {
		return
	}

	resp, err := h.service.Approve(c.Request.Context(), actorFrom(c), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, "Attendance approved successfully")
}

func (h *Handler) Reject(c *gin.Context) {
	var req RejectAttendanceRequest
	if !h.bind(c, &req) {
		return
	}

	resp, err := h.service.Reject(c.Request.Context(), actorFrom(c), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, "Attendance rejected")
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateAttendanceRequest
	if !h.bind(c, &req) {
		return
	}

	resp, err := h.service.Update(c.Request.Context(), actorFrom(c), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, "Attendance updated successfully")
}

func (h *Handler) Approved(c *gin.Context) {
	resp, err := h.service.Approved(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, "")
}

func (h *Handler) ByForeman(c *gin.Context) {
	resp, err := h.service.ByForeman(c.Request.Context(), c.Param("foremanId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, "")
}

// ForemanCurrent answers data:null when nothing was approved in the window.
func (h *Handler) ForemanCurrent(c *gin.Context) {
	resp, err := h.service.ForemanCurrent(c.Request.Context(), c.Param("foremanId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if resp == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": nil})
		return
	}
	response.Success(c, http.StatusOK, resp, "")
}

func (h *Handler) ForemanHistory(c *gin.Context) {
	resp, err := h.service.ForemanHistory(c.Request.Context(), c.Param("foremanId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, "")
}

func (h *Handler) Recent(c *gin.Context) {
	resp, err := h.service.Recent(c.Request.Context(), actorFrom(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, "")
}
