package models

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// SuperAdminUsername is the reserved principal allowed to manage other accounts.
const SuperAdminUsername = "admin"

// ValidRole reports whether role is one a user record may hold.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}
