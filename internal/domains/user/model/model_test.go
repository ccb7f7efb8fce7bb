package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"concierge/internal/domains/user/model"
	"concierge/shared/constant"
)

func TestOutranks(t *testing.T) {
	tests := []struct {
		role, level string
		want        bool
	}{
		{constant.RoleSuperAdmin, constant.RoleSuperAdmin, true},
		{constant.RoleAdmin, constant.RoleStaff, true},
		{constant.RoleAdmin, constant.RoleAdmin, false},
		{constant.RoleAdmin, constant.RoleSuperAdmin, false},
		{constant.RoleStaff, constant.RoleUser, true},
		{constant.RoleUser, constant.RoleUser, false},
		{"bellhop", constant.RoleUser, false},
	}

	for _, tt := range tests {
		t.Run(tt.role+">"+tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, model.Outranks(tt.role, tt.level))
		})
	}
}
