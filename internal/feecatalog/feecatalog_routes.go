package feecatalog

import (
	"go-schoolfee/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts catalog routes on an authenticated, tenant-scoped
// /fees group.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	categories := r.Group("/categories")
	{
		categories.GET("", middleware.RBACAuthorize(rbacService, "fee_catalog", "read"), handler.GetCategories)
		categories.GET("/:id", middleware.RBACAuthorize(rbacService, "fee_catalog", "read"), handler.GetCategoryByID)
		categories.POST("", middleware.RBACAuthorize(rbacService, "fee_catalog", "create"), handler.CreateCategory)
		categories.PUT("/:id", middleware.RBACAuthorize(rbacService, "fee_catalog", "update"), handler.UpdateCategory)
		categories.DELETE("/:id", middleware.RBACAuthorize(rbacService, "fee_catalog", "delete"), handler.DeleteCategory)
	}

	structures := r.Group("/structures")
	{
		structures.GET("", middleware.RBACAuthorize(rbacService, "fee_catalog", "read"), handler.GetStructures)
		structures.GET("/:id", middleware.RBACAuthorize(rbacService, "fee_catalog", "read"), handler.GetStructureByID)
		structures.POST("", middleware.RBACAuthorize(rbacService, "fee_catalog", "create"), handler.CreateStructure)
		structures.PUT("/:id", middleware.RBACAuthorize(rbacService, "fee_catalog", "update"), handler.UpdateStructure)
		structures.DELETE("/:id", middleware.RBACAuthorize(rbacService, "fee_catalog", "delete"), handler.DeleteStructure)
	}
}
