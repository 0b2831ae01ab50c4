package domain

import "time"

// Role classifies an account for authorization decisions.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleAlumno Role = "alumno"
)

// DashboardPath returns the post-login landing path for the role.
func (r Role) DashboardPath() string {
	if r == RoleAdmin {
		return "/admin"
	}
	return "/alumno"
}

// User is the domain model for a school account. The phone number (celular)
// is the login handle. PasswordHash is nil for legacy accounts created
// before passwords were introduced.
type User struct {
	ID           string
	Nombre       string
	Celular      string
	Email        *string
	Rol          Role
	PasswordHash *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
