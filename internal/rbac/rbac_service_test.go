package rbac

import (
	"testing"

	"construct-erp/internal/domain"
	"construct-erp/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	enforcer, err := infra.NewEnforcer(ModelText)
	require.NoError(t, err)

	svc, err := NewService(enforcer, DefaultPolicy())
	require.NoError(t, err)
	return svc
}

func TestRBACService_Enforce(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		role    string
		action  string
		allowed bool
	}{
		{domain.RoleForeman, domain.ActionSubmit, true},
		{domain.RoleForeman, domain.ActionReview, false},
		{domain.RoleForeman, domain.ActionApprove, false},
		{domain.RoleSiteIncharge, domain.ActionReview, true},
		{domain.RoleSiteIncharge, domain.ActionReject, true},
		{domain.RoleSiteIncharge, domain.ActionApprove, false},
		{domain.RoleSiteIncharge, domain.ActionSubmit, false},
		{domain.RoleAdmin, domain.ActionApprove, true},
		{domain.RoleAdmin, domain.ActionEdit, true},
		{domain.RoleAdmin, domain.ActionListAll, true},
		{domain.RoleAdmin, domain.ActionSubmit, false},
		{"guest", domain.ActionRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.role+"/"+tt.action, func(t *testing.T) {
			allowed, err := svc.Enforce(domain.EnforceRequest{
				Role:     tt.role,
				Resource: domain.ResourceAttendance,
				Action:   tt.action,
			})
			assert.NoError(t, err)
			assert.Equal(t, tt.allowed, allowed)
		})
	}
}

func TestRBACService_EnforceWithoutRole(t *testing.T) {
	svc := newTestService(t)

	allowed, err := svc.Enforce(domain.EnforceRequest{Resource: domain.ResourceDashboard, Action: domain.ActionRead})
	assert.NoError(t, err)
	assert.False(t, allowed)
}

func TestRBACService_PermissionsForRole(t *testing.T) {
	svc := newTestService(t)

	perms, err := svc.PermissionsForRole(domain.RoleSiteIncharge)
	require.NoError(t, err)

	assert.ElementsMatch(t, []domain.PermissionResponse{
		{Resource: domain.ResourceAttendance, Action: domain.ActionReview},
		{Resource: domain.ResourceAttendance, Action: domain.ActionReject},
		{Resource: domain.ResourceAttendance, Action: domain.ActionRead},
		{Resource: domain.ResourceDashboard, Action: domain.ActionRead},
	}, perms)
}
