package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gst-ledger/internal/application/dto"
	"github.com/jhoicas/gst-ledger/internal/domain"
)

// ledgerService contrato que el handler necesita de ledger.UseCase.
type ledgerService interface {
	Create(ctx context.Context, in dto.CreateLedgerEntryRequest) (*dto.LedgerEntryResponse, error)
	List(ctx context.Context, period string) ([]dto.LedgerEntryResponse, error)
}

// LedgerHandler maneja las peticiones HTTP del libro de asientos (protegido).
type LedgerHandler struct {
	uc ledgerService
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc ledgerService) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar asiento
// @Description  Monto bruto (impuesto incluido); negativo para devoluciones. Requiere rol admin o contador.
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateLedgerEntryRequest  true  "Asiento"
// @Success      201   {object}  dto.LedgerEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/ledger [post]
func (h *LedgerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLedgerEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "asiento inválido: fecha, monto, tipo o tarifa"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Asientos del período
// @Description  Los más recientes primero.
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        period  query  string  true  "Período YYYY-MM"
// @Success      200  {array}   dto.LedgerEntryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/ledger [get]
func (h *LedgerHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context(), c.Query("period"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: domain.CodeInvalidPeriod, Message: "period debe tener formato YYYY-MM"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(items)
}
