package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"construct-erp/internal/shared/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestNewResolver(t *testing.T) {
	r, err := NewResolver(config.WindowConfig{Timezone: "UTC", Anchor: "05:30", LookbackDays: 40})
	require.NoError(t, err)
	assert.Equal(t, time.UTC, r.Location())
	assert.Equal(t, 40*24*time.Hour, r.Lookback())

	_, err = NewResolver(config.WindowConfig{Timezone: "Mars/Olympus", Anchor: "05:30"})
	assert.Error(t, err)

	_, err = NewResolver(config.WindowConfig{Timezone: "UTC", Anchor: "5h30"})
	assert.Error(t, err)
}

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/health", health)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.Contains(t, w.Body.String(), `"timestamp"`)
}

func TestRegisterModules_MountsRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	windows, err := NewResolver(config.WindowConfig{Timezone: "UTC", Anchor: "05:30", LookbackDays: 40})
	require.NoError(t, err)

	cfg := config.Config{
		JWTSecret:          "secret",
		RateLimit:          config.RateLimitConfig{Requests: 100, Window: 15 * time.Minute},
		CORSAllowedOrigins: []string{"http://localhost:5173"},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := gin.New()
	require.NoError(t, registerModules(ctx, r, cfg, db, nil, windows))

	routes := map[string]bool{}
	for _, ri := range r.Routes() {
		routes[ri.Method+" "+ri.Path] = true
	}
	for _, want := range []string{
		"GET /api/health",
		"POST /api/auth/login",
		"POST /api/attendance/submit",
		"POST /api/attendance/admin-approve/:id",
		"GET /api/attendance/foreman/:foremanId/history",
		"GET /api/dashboard/stats",
		"GET /api/rbac/permissions",
	} {
		assert.True(t, routes[want], want)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/attendance/recent", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
