package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hablalab/academy-service/internal/api/dto"
	"github.com/hablalab/academy-service/internal/repository"
	"github.com/hablalab/academy-service/internal/service"
	apperrors "github.com/hablalab/academy-service/pkg/util/errorutil"
)

// AdminHandler serves the administrative listings. Routes using it sit
// behind RequireRole(admin).
type AdminHandler struct {
	users        repository.UserRepository
	inscriptions repository.InscriptionRepository
	payments     repository.PaymentRepository
	receipts     *service.ReceiptService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(
	users repository.UserRepository,
	inscriptions repository.InscriptionRepository,
	payments repository.PaymentRepository,
	receipts *service.ReceiptService,
) *AdminHandler {
	return &AdminHandler{users: users, inscriptions: inscriptions, payments: payments, receipts: receipts}
}

// ListAlumnos GET /api/admin/alumnos.
func (h *AdminHandler) ListAlumnos(c *fiber.Ctx) error {
	users, err := h.users.List(c.Context())
	if err != nil {
		return err
	}

	summaries := make([]dto.UsuarioSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, dto.UsuarioFromUser(&users[i]))
	}
	return c.JSON(fiber.Map{"alumnos": summaries})
}

// ListInscripciones GET /api/admin/inscripciones.
func (h *AdminHandler) ListInscripciones(c *fiber.Ctx) error {
	inscriptions, err := h.inscriptions.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"inscripciones": dto.InscripcionesFromDomain(inscriptions)})
}

// ListPagos GET /api/admin/pagos.
func (h *AdminHandler) ListPagos(c *fiber.Ctx) error {
	payments, err := h.payments.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"pagos": dto.PagosFromDomain(payments)})
}

// ReceiptToken POST /api/admin/recibos/token. Administrative override: the
// inscription lookup has no owner filter.
func (h *AdminHandler) ReceiptToken(c *fiber.Ctx) error {
	var req dto.ReceiptTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("cuerpo inválido", nil)
	}
	if req.InscripcionID == "" {
		return apperrors.NewValidationError("inscripcion_id requerido", nil)
	}

	token, expiresAt, err := h.receipts.IssueForAdmin(c.Context(), req.InscripcionID)
	if err != nil {
		return err
	}
	return c.JSON(dto.ReceiptTokenResponse{Token: token, ExpiresAt: expiresAt})
}
