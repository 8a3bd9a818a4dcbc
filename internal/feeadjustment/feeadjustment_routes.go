package feeadjustment

import (
	"go-schoolfee/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	r.PUT("/:id/adjust", middleware.RBACAuthorize(rbacService, "fee_adjustment", "update"), handler.AdjustFee)
	r.GET("/:id/adjustments", middleware.RBACAuthorize(rbacService, "fee_adjustment", "read"), handler.GetFeeAdjustments)
}
