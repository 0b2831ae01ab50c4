package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hablalab/academy-service/internal/api/dto"
	"github.com/hablalab/academy-service/internal/auth"
	"github.com/hablalab/academy-service/internal/repository"
	apperrors "github.com/hablalab/academy-service/pkg/util/errorutil"
)

// DashboardHandler serves the bootstrap payloads behind the guarded
// dashboard paths. The edge RouteGuard only checks cookie presence, so
// these handlers re-verify the credential through the extractor chain.
type DashboardHandler struct {
	inscriptions repository.InscriptionRepository
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(inscriptions repository.InscriptionRepository) *DashboardHandler {
	return &DashboardHandler{inscriptions: inscriptions}
}

// Login GET /login. Public landing; the fixed target of guard redirects.
func (h *DashboardHandler) Login(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"page": "login"})
}

// Alumno GET /alumno.
func (h *DashboardHandler) Alumno(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("autenticación requerida")
	}

	inscriptions, err := h.inscriptions.ListByUser(c.Context(), identity.UserID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"usuario": dto.UsuarioSummary{
			ID:      identity.UserID,
			Nombre:  identity.Nombre,
			Celular: identity.Celular,
			Email:   identity.Email,
			Rol:     identity.Rol,
		},
		"inscripciones": dto.InscripcionesFromDomain(inscriptions),
	})
}

// Admin GET /admin.
func (h *DashboardHandler) Admin(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("autenticación requerida")
	}

	inscriptions, err := h.inscriptions.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"usuario": dto.UsuarioSummary{
			ID:      identity.UserID,
			Nombre:  identity.Nombre,
			Celular: identity.Celular,
			Email:   identity.Email,
			Rol:     identity.Rol,
		},
		"inscripciones": dto.InscripcionesFromDomain(inscriptions),
	})
}
