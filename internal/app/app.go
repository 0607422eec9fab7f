package app

import (
	"context"
	"time"

	"construct-erp/internal/shared/config"
	"construct-erp/internal/shared/connection"
	"construct-erp/internal/timewindow"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const connectRetries = 5

// NewResolver builds the attendance window resolver from config.
func NewResolver(cfg config.WindowConfig) (*timewindow.Resolver, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, err
	}
	anchor, err := timewindow.ParseAnchor(cfg.Anchor)
	if err != nil {
		return nil, err
	}
	return timewindow.NewResolver(
		timewindow.SystemClock{},
		timewindow.WithLocation(loc),
		timewindow.WithAnchor(anchor),
		timewindow.WithLookbackDays(cfg.LookbackDays),
	), nil
}

// BuildApp connects the stores and mounts every route on router. The
// returned func releases the connections.
func BuildApp(ctx context.Context, router *gin.Engine, cfg config.Config) (func(ctx context.Context), error) {
	log := zap.L().Named("app")

	windows, err := NewResolver(cfg.Window)
	if err != nil {
		return nil, err
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, connectRetries)
	if err != nil {
		return nil, err
	}
	log.Info("database connection established")

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg.RedisAddr, connectRetries)
		if err != nil {
			closeDB(gormDB, log)
			return nil, err
		}
		log.Info("redis connection established")
	} else {
		log.Warn("REDIS_ADDR not set, idempotency and dashboard cache disabled")
	}

	if err := registerModules(ctx, router, cfg, gormDB, rdb, windows); err != nil {
		closeDB(gormDB, log)
		return nil, err
	}

	return func(context.Context) {
		if rdb != nil {
			if err := rdb.Close(); err != nil {
				log.Warn("close redis failed", zap.Error(err))
			}
		}
		closeDB(gormDB, log)
	}, nil
}

func closeDB(db *gorm.DB, log *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Warn("close database failed", zap.Error(err))
	}
}

// NewLogger returns a production logger when APP_ENV=production and a
// development logger otherwise.
func NewLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
