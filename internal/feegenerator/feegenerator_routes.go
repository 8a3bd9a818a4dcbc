package feegenerator

import (
	"go-schoolfee/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	r.POST("/generate", middleware.RBACAuthorize(rbacService, "fee_generation", "create"), handler.GenerateForStructure)
	r.POST("/generate-for-student", middleware.RBACAuthorize(rbacService, "fee_generation", "create"), handler.GenerateForNewStudent)
	r.POST("/generate-monthly", middleware.RBACAuthorize(rbacService, "fee_generation", "create"), handler.GenerateMonthly)
}

// RegisterCronRoutes mounts scheduler entry points on a group already guarded
// by the cron secret.
func RegisterCronRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/generate-monthly", handler.CronGenerateMonthly)
}
