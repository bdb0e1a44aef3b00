// Package policy holds the visibility and permission rules shared by
// every resource module. Each resource gets a pure predicate for
// single-record checks and a GORM scope producing the equivalent list
// filter, so the two call sites cannot drift apart.
package policy

import (
	"github.com/officehub/office-management-api/internal/models"
)

// Actor is the authenticated identity a request acts as. Department is
// empty when the user has no employee profile.
type Actor struct {
	UserID     uint64
	Role       models.Role
	Department string
}

func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

func (a Actor) IsManagerOrAdmin() bool {
	return a.Role == models.RoleAdmin || a.Role == models.RoleManager
}

func (a Actor) IsEmployee() bool {
	return a.Role == models.RoleEmployee
}
