package middleware

import (
	"go-schoolfee/internal/domain"
	"go-schoolfee/internal/shared/apperror"
	"go-schoolfee/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RBACService is anything that can answer an EnforceRequest.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		schoolID := c.GetString("school_id")
		if schoolID == "" {
			fail(c, apperror.ErrMissingTenant)
			return
		}

		allowed, err := service.Enforce(domain.EnforceRequest{
			UserID:   c.GetString("user_id"),
			SchoolID: schoolID,
			Role:     c.GetString("role"),
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			contextutil.GetLogger(c.Request.Context(), zap.L()).Error("rbac enforce failed", zap.Error(err))
			fail(c, apperror.ErrInternal)
			return
		}
		if !allowed {
			fail(c, apperror.ErrForbidden)
			return
		}
		c.Next()
	}
}
