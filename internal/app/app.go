package app

import (
	"go-schoolfee/internal/middleware"
	"go-schoolfee/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure, migrates the fee tables and mounts
// every route on router.
func BuildApp(router *gin.Engine, cfg Config) error {
	logger := zap.L()

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Postgres, 5)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	if err := Migrate(gormDB); err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		return err
	}

	router.Use(middleware.RequestID())
	router.GET("/healthz", healthHandler(sqlDB, redisClient))

	return registerModules(router, cfg, sqlDB, gormDB, redisClient, logger)
}
