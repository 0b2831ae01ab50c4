package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hablalab/academy-service/internal/api/dto"
	"github.com/hablalab/academy-service/internal/auth"
	"github.com/hablalab/academy-service/internal/repository"
	"github.com/hablalab/academy-service/internal/service"
	apperrors "github.com/hablalab/academy-service/pkg/util/errorutil"
)

// AlumnoHandler serves the student's own dashboard data. Every endpoint is
// scoped to the resolved identity; there is no way to read another
// student's rows from here.
type AlumnoHandler struct {
	inscriptions repository.InscriptionRepository
	payments     repository.PaymentRepository
	receipts     *service.ReceiptService
}

// NewAlumnoHandler constructs handler.
func NewAlumnoHandler(
	inscriptions repository.InscriptionRepository,
	payments repository.PaymentRepository,
	receipts *service.ReceiptService,
) *AlumnoHandler {
	return &AlumnoHandler{inscriptions: inscriptions, payments: payments, receipts: receipts}
}

// MisInscripciones GET /api/alumno/inscripciones.
func (h *AlumnoHandler) MisInscripciones(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("autenticación requerida")
	}
	inscriptions, err := h.inscriptions.ListByUser(c.Context(), identity.UserID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"inscripciones": dto.InscripcionesFromDomain(inscriptions)})
}

// MisPagos GET /api/alumno/pagos.
func (h *AlumnoHandler) MisPagos(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("autenticación requerida")
	}
	payments, err := h.payments.ListByUser(c.Context(), identity.UserID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"pagos": dto.PagosFromDomain(payments)})
}

// ReceiptToken POST /api/alumno/recibos/token. The lookup is owner
// filtered: asking for someone else's inscription reports not found.
func (h *AlumnoHandler) ReceiptToken(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("autenticación requerida")
	}

	var req dto.ReceiptTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("cuerpo inválido", nil)
	}
	if req.InscripcionID == "" {
		return apperrors.NewValidationError("inscripcion_id requerido", nil)
	}

	token, expiresAt, err := h.receipts.IssueForStudent(c.Context(), identity.UserID, req.InscripcionID)
	if err != nil {
		return err
	}
	return c.JSON(dto.ReceiptTokenResponse{Token: token, ExpiresAt: expiresAt})
}
