package domain

// Roles carried in access tokens.
const (
	RoleAdmin        = "admin"
	RoleSiteIncharge = "site_incharge"
	RoleForeman      = "foreman"
)

// Resources and actions checked by the policy.
const (
	ResourceAttendance = "attendance"
	ResourceDashboard  = "dashboard"

	ActionSubmit  = "submit"
	ActionCheck   = "check"
	ActionReview  = "review"
	ActionApprove = "approve"
	ActionReject  = "reject"
	ActionEdit    = "edit"
	ActionListAll = "list_all"
	ActionRead    = "read"
)

func IsKnownRole(role string) bool {
	switch role {
	case RoleAdmin, RoleSiteIncharge, RoleForeman:
		return true
	default:
		return false
	}
}

type EnforceRequest struct {
	Role     string `json:"role"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

type PermissionResponse struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
}
