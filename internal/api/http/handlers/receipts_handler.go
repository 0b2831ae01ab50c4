package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hablalab/academy-service/internal/api/dto"
	"github.com/hablalab/academy-service/internal/service"
	apperrors "github.com/hablalab/academy-service/pkg/util/errorutil"
)

// ReceiptsHandler redeems receipt-access tokens out-of-band. No session is
// required: the token alone authorizes the view.
type ReceiptsHandler struct {
	receipts *service.ReceiptService
}

// NewReceiptsHandler constructs handler.
func NewReceiptsHandler(receiptService *service.ReceiptService) *ReceiptsHandler {
	return &ReceiptsHandler{receipts: receiptService}
}

// View GET /api/recibos/:token.
func (h *ReceiptsHandler) View(c *fiber.Ctx) error {
	token := c.Params("token")
	if token == "" {
		return apperrors.NewValidationError("token requerido", nil)
	}

	view, err := h.receipts.View(c.Context(), token)
	if err != nil {
		return err
	}

	return c.JSON(dto.ReceiptViewResponse{
		Inscripcion: dto.InscripcionFromDomain(view.Inscription),
		Pagos:       dto.PagosFromDomain(view.Payments),
		TotalPagado: view.TotalPagado,
	})
}
