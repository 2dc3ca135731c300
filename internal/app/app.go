package app

import (
	"context"
	"time"

	"go-sitepass/internal/bootstrap"
	"go-sitepass/internal/config"
	"go-sitepass/internal/middleware"
	"go-sitepass/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const migrateTimeout = time.Minute

// BuildApp connects the stores, migrates the schema and mounts every module
// on router. The returned func releases the connections.
func BuildApp(router *gin.Engine, cfg config.Config, audit bootstrap.AuditLogger) (func(), error) {
	logger := zap.L().Named("app.api")

	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB.Postgres(), cfg.DB.Retries)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established")

	redisClient, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.DB.Retries)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}
	logger.Info("redis connection established")

	cleanup := func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("close redis", zap.Error(err))
		}
		if err := sqlDB.Close(); err != nil {
			logger.Warn("close database", zap.Error(err))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()
	if err := Migrate(ctx, gormDB); err != nil {
		cleanup()
		return nil, err
	}

	// 2. Register Modules & Routes
	m, err := buildModules(cfg, sqlDB, gormDB, redisClient, audit, zap.L())
	if err != nil {
		cleanup()
		return nil, err
	}

	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.ContextLogger(zap.L()),
	)
	registerRoutes(router, m, redisClient, cfg.IsProduction(), zap.L())

	return cleanup, nil
}
