package latefee

import (
	"go-schoolfee/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	r.POST("/apply-late-fees", middleware.RBACAuthorize(rbacService, "late_fee", "apply"), handler.ApplyLateFees)

	policy := r.Group("/late-fee-policy")
	{
		policy.GET("", middleware.RBACAuthorize(rbacService, "late_fee", "read"), handler.GetPolicy)
		policy.PUT("", middleware.RBACAuthorize(rbacService, "late_fee", "update"), handler.UpsertPolicy)
	}
}

func RegisterCronRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/apply-late-fees", handler.CronApplyLateFees)
}
