package siblingdiscount

import (
	"go-schoolfee/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	tiers := r.Group("/sibling-discounts")
	{
		tiers.GET("", middleware.RBACAuthorize(rbacService, "sibling_discount", "read"), handler.GetTiers)
		tiers.GET("/preview", middleware.RBACAuthorize(rbacService, "sibling_discount", "read"), handler.Preview)
		tiers.PUT("", middleware.RBACAuthorize(rbacService, "sibling_discount", "update"), handler.ReplaceTiers)
	}
}
