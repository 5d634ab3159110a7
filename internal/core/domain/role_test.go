package domain_test

import (
	"testing"

	"github.com/SscSPs/corp_portal/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestRole_RankTotalOrder(t *testing.T) {
	for i, a := range domain.Roles {
		assert.Equal(t, i+1, a.Rank(), "rank of %s", a)
		for j, b := range domain.Roles {
			assert.Equal(t, i < j, a.Rank() < b.Rank(), "%s vs %s", a, b)
		}
	}
}

func TestRole_Unknown(t *testing.T) {
	tests := []struct {
		name string
		role domain.Role
	}{
		{name: "empty", role: ""},
		{name: "legacy manager", role: "Manager"},
		{name: "spelled out admin", role: "Administrator"},
		{name: "wrong case", role: "admin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, domain.RankUnknown, tt.role.Rank())
			assert.False(t, tt.role.IsValid())
			assert.False(t, tt.role.AtLeast(domain.RoleEmployee))
			assert.Equal(t, domain.RoleAdmin.Rank(), tt.role.RequiredRank())
			_, ok := domain.ParseRole(string(tt.role))
			assert.False(t, ok)
		})
	}
}

func TestParseRole(t *testing.T) {
	r, ok := domain.ParseRole("SVP")
	assert.True(t, ok)
	assert.Equal(t, domain.RoleSVP, r)
	assert.Equal(t, "Senior Vice President - Strategic oversight", r.Description())
}

func TestDepartmentSet(t *testing.T) {
	set := domain.NewDepartmentSet(" Sales", "Marketing", "", "Sales ")

	assert.Equal(t, domain.DepartmentSet{"Sales", "Marketing"}, set)
	assert.Equal(t, "Sales, Marketing", set.String())
	assert.True(t, set.Contains("Marketing"))
	assert.False(t, set.Contains("IT"))
	assert.Empty(t, domain.NewDepartmentSet())
}
