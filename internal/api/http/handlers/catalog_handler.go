package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hablalab/academy-service/internal/api/dto"
	"github.com/hablalab/academy-service/internal/domain"
	"github.com/hablalab/academy-service/internal/service"
	apperrors "github.com/hablalab/academy-service/pkg/util/errorutil"
)

// CatalogHandler serves the public course catalog and per-course lessons.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler constructs handler.
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalogService}
}

// ListCursos GET /api/cursos. Public; backs the marketing pages.
func (h *CatalogHandler) ListCursos(c *fiber.Ctx) error {
	courses, err := h.catalog.ListCourses(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"cursos": dto.CursosFromDomain(courses)})
}

// GetCurso GET /api/cursos/:id. Public.
func (h *CatalogHandler) GetCurso(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return apperrors.NewValidationError("id requerido", nil)
	}
	course, err := h.catalog.GetCourse(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"curso": dto.CursosFromDomain([]domain.Course{*course})[0]})
}

// ListLecciones GET /api/cursos/:id/lecciones. Requires a session; the
// video pages are for enrolled students browsing their course.
func (h *CatalogHandler) ListLecciones(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return apperrors.NewValidationError("id requerido", nil)
	}
	lessons, err := h.catalog.ListLessons(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"lecciones": dto.LeccionesFromDomain(lessons)})
}
