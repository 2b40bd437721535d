// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MaxUserNameLength is the longest display name, in characters.
const MaxUserNameLength = 100

// User is an account of the marketplace. An authenticated User acting on a
// request is the principal of that request.
type User struct {
	ID           uuid.UUID
	Email        string // Unique, compared as stored.
	PasswordHash string // Never leaves the service layer.
	Name         string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasRole reports whether the user holds exactly the given role.
func (u *User) HasRole(role Role) bool {
	return u != nil && u.Role == role
}
