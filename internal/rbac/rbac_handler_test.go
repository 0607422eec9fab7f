package rbac

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"construct-erp/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newHandlerRouter(t *testing.T, role string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := NewHandler(newTestService(t))

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("role", role)
		c.Next()
	})
	r.GET("/rbac/permissions", h.Permissions)
	r.POST("/rbac/enforce", h.Enforce)
	return r
}

func TestRBACHandler_Enforce(t *testing.T) {
	r := newHandlerRouter(t, domain.RoleSiteIncharge)

	t.Run("allowed", func(t *testing.T) {
		w := httptest.NewRecorder()
		body := `{"resource":"attendance","action":"review"}`
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBufferString(body)))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"allowed":true`)
	})

	t.Run("denied", func(t *testing.T) {
		w := httptest.NewRecorder()
		body := `{"resource":"attendance","action":"approve"}`
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBufferString(body)))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"allowed":false`)
	})

	t.Run("missing action", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBufferString(`{"resource":"attendance"}`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRBACHandler_Permissions(t *testing.T) {
	r := newHandlerRouter(t, domain.RoleForeman)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rbac/permissions", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"action":"submit"`)
	assert.NotContains(t, w.Body.String(), `"action":"approve"`)
}
