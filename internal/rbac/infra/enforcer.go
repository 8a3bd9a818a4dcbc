package infra

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// Roles inherit every permission of the role they extend, so policies only
// list what a role adds.
const modelText = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RoleBursar     = "bursar"
	RoleViewer     = "viewer"
)

var inheritance = [][]string{
	{RoleSuperAdmin, RoleAdmin},
	{RoleAdmin, RoleBursar},
	{RoleBursar, RoleViewer},
}

var policies = [][]string{
	{RoleViewer, "fee_catalog", "read"},
	{RoleViewer, "sibling_discount", "read"},
	{RoleViewer, "late_fee", "read"},
	{RoleViewer, "payment", "read"},
	{RoleViewer, "fee_adjustment", "read"},
	{RoleViewer, "fee_report", "read"},

	{RoleBursar, "payment", "create"},
	{RoleBursar, "payment", "update"},
	{RoleBursar, "payment", "delete"},
	{RoleBursar, "fee_generation", "create"},

	{RoleAdmin, "fee_catalog", "create"},
	{RoleAdmin, "fee_catalog", "update"},
	{RoleAdmin, "fee_catalog", "delete"},
	{RoleAdmin, "sibling_discount", "update"},
	{RoleAdmin, "late_fee", "update"},
	{RoleAdmin, "late_fee", "apply"},
	{RoleAdmin, "fee_adjustment", "update"},
}

// NewEnforcer builds an in-memory enforcer loaded with the fee role matrix.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}
	if _, err := e.AddGroupingPolicies(inheritance); err != nil {
		return nil, err
	}
	if _, err := e.AddPolicies(policies); err != nil {
		return nil, err
	}
	return e, nil
}
