package payment

import (
	"go-schoolfee/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RegisterRoutes mounts the ledger. With a nil rdb, POST /payments runs
// without Idempotency-Key replay.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	if logger == nil {
		logger = zap.L()
	}

	record := []gin.HandlerFunc{middleware.RBACAuthorize(rbacService, "payment", "create")}
	if rdb != nil {
		record = append(record, middleware.Idempotency(rdb, logger))
	}
	record = append(record, handler.RecordPayment)

	payments := r.Group("/payments")
	{
		payments.POST("", record...)
		payments.PUT("/:id", middleware.RBACAuthorize(rbacService, "payment", "update"), handler.UpdatePayment)
		payments.DELETE("/:id", middleware.RBACAuthorize(rbacService, "payment", "delete"), handler.DeletePayment)
	}

	r.GET("/:id/payments", middleware.RBACAuthorize(rbacService, "payment", "read"), handler.GetPaymentsByFee)
}
