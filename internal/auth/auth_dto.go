package auth

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// CreateUserRequest is used by operator tooling; there is no public
// registration endpoint.
type CreateUserRequest struct {
	Username string
	Name     string
	Password string
	Role     string
	SiteID   string
}

type AuthResponse struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Name     string  `json:"name"`
	Role     string  `json:"role"`
	SiteID   *string `json:"siteId,omitempty"`
}

type LoginResponse struct {
	User  AuthResponse `json:"user"`
	Token string       `json:"token"`
}
