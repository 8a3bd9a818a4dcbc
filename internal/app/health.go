package app

import (
	"context"
	"net/http"
	"time"

	"go-schoolfee/internal/shared/apperror"
	"go-schoolfee/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type pinger interface {
	PingContext(ctx context.Context) error
}

// healthHandler reports 503 while Postgres or Redis cannot be reached.
func healthHandler(db pinger, rdb redis.Cmdable) gin.HandlerFunc {
	log := zap.L().Named("app.health")

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		checks := map[string]string{"postgres": "ok", "redis": "ok"}
		healthy := true
		if err := db.PingContext(ctx); err != nil {
			log.Warn("postgres health check failed", zap.Error(err))
			checks["postgres"] = "down"
			healthy = false
		}
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn("redis health check failed", zap.Error(err))
			checks["redis"] = "down"
			healthy = false
		}

		if !healthy {
			e := apperror.ErrServiceUnavailable
			response.Error(c, e.HTTPStatus, e.Code, e.Message, checks)
			return
		}
		response.Success(c, http.StatusOK, checks, nil)
	}
}
