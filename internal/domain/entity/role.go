// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleClient is the default role of every registered user.
	RoleClient Role = "client"
	// RoleMerchant is granted when a user opens a storefront.
	RoleMerchant Role = "merchant"
	// RoleAdmin manages the shared tag vocabulary.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleMerchant, RoleAdmin:
		return true
	default:
		return false
	}
}

// ParseRole converts s to a Role, reporting whether it names a known role.
func ParseRole(s string) (Role, bool) {
	role := Role(s)

	return role, role.IsValid()
}
