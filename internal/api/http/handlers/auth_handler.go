package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hablalab/academy-service/internal/api/dto"
	"github.com/hablalab/academy-service/internal/auth"
	"github.com/hablalab/academy-service/internal/service"
	apperrors "github.com/hablalab/academy-service/pkg/util/errorutil"
)

// AuthHandler exposes the login flow.
type AuthHandler struct {
	auth       *service.AuthService
	extractor  *auth.Extractor
	production bool
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, extractor *auth.Extractor, production bool) *AuthHandler {
	return &AuthHandler{auth: authService, extractor: extractor, production: production}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("cuerpo inválido", nil)
	}
	if req.Celular == "" {
		return apperrors.NewValidationError("celular requerido", nil)
	}

	user, token, _, err := h.auth.Login(c.Context(), req.Celular, req.Password)
	if err != nil {
		return err
	}

	c.Cookie(auth.SessionCookie(token, h.production))
	return c.JSON(dto.LoginResponse{
		Success:  true,
		Token:    token,
		Usuario:  dto.UsuarioFromUser(user),
		Redirect: user.Rol.DashboardPath(),
	})
}

// Logout handles POST /api/auth/logout. Tokens are stateless; logout only
// clears the cookie on the client.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(auth.ClearSessionCookie())
	return c.JSON(fiber.Map{"success": true})
}

// Me handles GET /api/auth/me. The response is the token's identity
// snapshot; no database read happens here.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	identity := h.extractor.Resolve(c)
	if identity == nil {
		return apperrors.NewUnauthorized("autenticación requerida")
	}
	return c.JSON(fiber.Map{"usuario": dto.UsuarioSummary{
		ID:      identity.UserID,
		Nombre:  identity.Nombre,
		Celular: identity.Celular,
		Email:   identity.Email,
		Rol:     identity.Rol,
	}})
}
