package rbac

import (
	"testing"

	"go-schoolfee/internal/domain"
	"go-schoolfee/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRBACService_Enforce(t *testing.T) {
	enforcer, err := infra.NewEnforcer()
	assert.NoError(t, err)
	service := NewService(enforcer, zap.NewNop())

	tests := []struct {
		name     string
		role     string
		resource string
		action   string
		allowed  bool
	}{
		{"viewer reads reports", infra.RoleViewer, "fee_report", "read", true},
		{"viewer cannot record payments", infra.RoleViewer, "payment", "create", false},
		{"bursar records payments", infra.RoleBursar, "payment", "create", true},
		{"bursar inherits viewer reads", infra.RoleBursar, "fee_catalog", "read", true},
		{"bursar cannot adjust fees", infra.RoleBursar, "fee_adjustment", "update", false},
		{"admin adjusts fees", infra.RoleAdmin, "fee_adjustment", "update", true},
		{"admin applies late fees", infra.RoleAdmin, "late_fee", "apply", true},
		{"super admin inherits the whole chain", infra.RoleSuperAdmin, "payment", "delete", true},
		{"unknown role", "janitor", "fee_report", "read", false},
		{"empty role", "", "fee_report", "read", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, err := service.Enforce(domain.EnforceRequest{
				SchoolID: "school-1",
				Role:     tt.role,
				Resource: tt.resource,
				Action:   tt.action,
			})

			assert.NoError(t, err)
			assert.Equal(t, tt.allowed, allowed)
		})
	}
}
