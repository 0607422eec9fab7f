package rbac

import "construct-erp/internal/domain"

const ModelText = `[request_definition]
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

type Permission struct {
	Role     string
	Resource string
	Action   string
}

// DefaultPolicy is the fixed role matrix of the attendance workflow.
func DefaultPolicy() []Permission {
	return []Permission{
		{domain.RoleForeman, domain.ResourceAttendance, domain.ActionSubmit},
		{domain.RoleForeman, domain.ResourceAttendance, domain.ActionCheck},
		{domain.RoleForeman, domain.ResourceAttendance, domain.ActionRead},

		{domain.RoleSiteIncharge, domain.ResourceAttendance, domain.ActionReview},
		{domain.RoleSiteIncharge, domain.ResourceAttendance, domain.ActionReject},
		{domain.RoleSiteIncharge, domain.ResourceAttendance, domain.ActionRead},

		{domain.RoleAdmin, domain.ResourceAttendance, domain.ActionApprove},
		{domain.RoleAdmin, domain.ResourceAttendance, domain.ActionReject},
		{domain.RoleAdmin, domain.ResourceAttendance, domain.ActionEdit},
		{domain.RoleAdmin, domain.ResourceAttendance, domain.ActionListAll},
		{domain.RoleAdmin, domain.ResourceAttendance, domain.ActionRead},

		{domain.RoleForeman, domain.ResourceDashboard, domain.ActionRead},
		{domain.RoleSiteIncharge, domain.ResourceDashboard, domain.ActionRead},
		{domain.RoleAdmin, domain.ResourceDashboard, domain.ActionRead},
	}
}
