package dashboard

import (
	"net/http"

	"construct-erp/internal/shared/apperror"
	"construct-erp/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("dashboard.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Stats(c *gin.Context) {
	resp, err := h.service.Stats(c.Request.Context())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		if httpErr.Status >= http.StatusInternalServerError {
			h.logger.Error("dashboard stats request failed", zap.Error(err))
		}
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message)
		return
	}
	response.Success(c, http.StatusOK, resp, "")
}
