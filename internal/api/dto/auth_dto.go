package dto

import "github.com/hablalab/academy-service/internal/domain"

// LoginRequest payload for POST /api/auth/login. The phone number is the
// login handle; the password is optional for legacy accounts.
type LoginRequest struct {
	Celular  string `json:"celular"`
	Password string `json:"password"`
}

// UsuarioSummary is the identity snapshot returned to clients.
type UsuarioSummary struct {
	ID      string      `json:"id"`
	Nombre  string      `json:"nombre"`
	Celular string      `json:"celular"`
	Email   *string     `json:"email,omitempty"`
	Rol     domain.Role `json:"rol"`
}

// LoginResponse is the login result, including the role-dependent
// post-login redirect path.
type LoginResponse struct {
	Success  bool           `json:"success"`
	Token    string         `json:"token"`
	Usuario  UsuarioSummary `json:"usuario"`
	Redirect string         `json:"redirect"`
}

// UsuarioFromUser maps the domain model to its wire form.
func UsuarioFromUser(user *domain.User) UsuarioSummary {
	return UsuarioSummary{
		ID:      user.ID,
		Nombre:  user.Nombre,
		Celular: user.Celular,
		Email:   user.Email,
		Rol:     user.Rol,
	}
}
