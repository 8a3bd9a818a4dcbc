package tenant_test

import (
	"testing"

	"go-schoolfee/internal/tenant"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveSchoolID(t *testing.T) {
	assert.Equal(t, "campus-1", tenant.EffectiveSchoolID(tenant.Identity{SchoolID: "school-1", CampusID: "campus-1"}))
	assert.Equal(t, "school-1", tenant.EffectiveSchoolID(tenant.Identity{SchoolID: "school-1", CampusID: "  "}))
	assert.Equal(t, "", tenant.EffectiveSchoolID(tenant.Identity{}))
}
