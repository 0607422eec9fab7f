package app

import (
	"context"
	"net/http"
	"time"

	"construct-erp/internal/attendance"
	"construct-erp/internal/auth"
	"construct-erp/internal/dashboard"
	"construct-erp/internal/messaging/kafka"
	"construct-erp/internal/middleware"
	"construct-erp/internal/rbac"
	"construct-erp/internal/rbac/infra"
	"construct-erp/internal/shared/config"
	"construct-erp/internal/site"
	"construct-erp/internal/summary"
	"construct-erp/internal/timewindow"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	loginRequests      = 20
	limiterPruneEvery  = 10 * time.Minute
	limiterIdleTimeout = 30 * time.Minute
)

func registerModules(
	ctx context.Context,
	router *gin.Engine,
	cfg config.Config,
	gormDB *gorm.DB,
	rdb *redis.Client,
	windows *timewindow.Resolver,
) error {
	logger := zap.L()

	// --- Repositories ---
	siteRepo := site.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	summaryRepo := summary.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(rbac.ModelText)
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer, rbac.DefaultPolicy())
	if err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(authRepo, auth.TokenConfig{Secret: cfg.JWTSecret})
	attendanceService := attendance.NewServiceWithOutbox(gormDB, attendanceRepo, siteRepo, outboxRepo, windows)
	summaryService := summary.NewService(summaryRepo)
	dashboardService := dashboard.NewService(siteRepo, attendanceRepo, summaryService, windows, rdb)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, cfg.IsProduction())
	attendanceHandler := attendance.NewHandler(attendanceService, rdb)
	dashboardHandler := dashboard.NewHandler(dashboardService)
	rbacHandler := rbac.NewHandler(rbacService)

	// --- Middleware ---
	apiLimiter := middleware.NewWindowRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	loginLimiter := middleware.NewWindowRateLimiter(loginRequests, cfg.RateLimit.Window)
	go pruneLimiters(ctx, apiLimiter, loginLimiter)

	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(logger),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)
	authMW := middleware.AuthMiddleware(cfg.JWTSecret)

	// --- Routes Registration ---
	api := router.Group("/api")
	api.Use(middleware.RateLimitByIP(apiLimiter), middleware.TimeWindow(windows))
	{
		api.GET("/health", health)

		auth.RegisterRoutes(api, authHandler, authMW, loginLimiter)
		attendance.RegisterRoutes(api, attendanceHandler, authMW, rbacService, middleware.Idempotency(rdb, logger))
		dashboard.RegisterRoutes(api, dashboardHandler, authMW, rbacService)
		rbac.RegisterRoutes(api, rbacHandler, authMW)
	}

	return nil
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func pruneLimiters(ctx context.Context, limiters ...*middleware.KeyedRateLimiter) {
	ticker := time.NewTicker(limiterPruneEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, l := range limiters {
				l.Prune(limiterIdleTimeout)
			}
		}
	}
}
