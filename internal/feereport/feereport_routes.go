package feereport

import (
	"go-schoolfee/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	read := middleware.RBACAuthorize(rbacService, "fee_report", "read")

	r.GET("/students", read, handler.ListStudentFees)
	r.GET("/by-grade", read, handler.ByGrade)
	r.GET("/dashboard", read, handler.Dashboard)
	r.GET("/history/:studentId", read, handler.History)
}
