package dto

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is returned by both register and login.
type AuthResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type GrantAdminRequest struct {
	UsernameToUpdate string `json:"usernameToUpdate"`
}
