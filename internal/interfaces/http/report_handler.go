package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gst-ledger/internal/application/dto"
	"github.com/jhoicas/gst-ledger/internal/domain"
	"github.com/jhoicas/gst-ledger/internal/domain/gst"
)

// reportService contrato que el handler necesita de reports.UseCase.
type reportService interface {
	GenerateSalesRegister(ctx context.Context, period string) (*gst.SalesRegister, error)
	GenerateSummaryReturn(ctx context.Context, period string) (*gst.SummaryReturn, error)
	GenerateProfitAndLoss(ctx context.Context, period string) (*gst.ProfitAndLoss, error)
}

// documentGenerator contrato de los exportadores (PDF, XML).
type documentGenerator interface {
	SalesRegisterDocument(ctx context.Context, reg gst.SalesRegister) ([]byte, error)
	SummaryReturnDocument(ctx context.Context, sr gst.SummaryReturn) ([]byte, error)
}

const (
	formatJSON = "json"
	formatPDF  = "pdf"
	formatXML  = "xml"
)

// ReportHandler maneja los endpoints de reportes de impuesto (protegido).
type ReportHandler struct {
	uc  reportService
	pdf documentGenerator
	xml documentGenerator
}

// NewReportHandler construye el handler. pdf y xml pueden ser nil: ese formato responde 400.
func NewReportHandler(uc reportService, pdf, xml documentGenerator) *ReportHandler {
	return &ReportHandler{uc: uc, pdf: pdf, xml: xml}
}

// SalesRegister godoc
// @Summary      Libro de ventas del período (GSTR-1)
// @Description  Una fila por venta válida, con base, tarifa, impuesto y total normalizados.
// @Tags         reports
// @Security     Bearer
// @Produce      json,application/pdf,application/xml
// @Param        period  query  string  true   "Período YYYY-MM"
// @Param        format  query  string  false  "json (default) | pdf | xml"
// @Success      200  {object}  gst.SalesRegister
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/sales-register [get]
func (h *ReportHandler) SalesRegister(c *fiber.Ctx) error {
	q, err := parseReportQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}
	reg, err := h.uc.GenerateSalesRegister(c.Context(), q.Period)
	if err != nil {
		return reportError(c, err)
	}
	switch q.Format {
	case formatJSON:
		return c.JSON(reg)
	default:
		gen := h.generator(q.Format)
		if gen == nil {
			return unsupportedFormat(c, q.Format)
		}
		doc, err := gen.SalesRegisterDocument(c.Context(), *reg)
		if err != nil {
			return reportError(c, err)
		}
		return sendDocument(c, q.Format, "sales-register-"+q.Period, doc)
	}
}

// SummaryReturn godoc
// @Summary      Declaración resumen del período (GSTR-3B)
// @Description  Totales de salida y entrada, notas crédito, saldo a pagar y desglose por tarifa.
// @Tags         reports
// @Security     Bearer
// @Produce      json,application/pdf,application/xml
// @Param        period  query  string  true   "Período YYYY-MM"
// @Param        format  query  string  false  "json (default) | pdf | xml"
// @Success      200  {object}  gst.SummaryReturn
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/summary-return [get]
func (h *ReportHandler) SummaryReturn(c *fiber.Ctx) error {
	q, err := parseReportQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}
	sr, err := h.uc.GenerateSummaryReturn(c.Context(), q.Period)
	if err != nil {
		return reportError(c, err)
	}
	switch q.Format {
	case formatJSON:
		return c.JSON(sr)
	default:
		gen := h.generator(q.Format)
		if gen == nil {
			return unsupportedFormat(c, q.Format)
		}
		doc, err := gen.SummaryReturnDocument(c.Context(), *sr)
		if err != nil {
			return reportError(c, err)
		}
		return sendDocument(c, q.Format, "summary-return-"+q.Period, doc)
	}
}

// ProfitAndLoss godoc
// @Summary      Estado de resultados del período
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        period  query  string  true  "Período YYYY-MM"
// @Success      200  {object}  gst.ProfitAndLoss
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/profit-and-loss [get]
func (h *ReportHandler) ProfitAndLoss(c *fiber.Ctx) error {
	q, err := parseReportQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}
	if q.Format != formatJSON {
		return unsupportedFormat(c, q.Format)
	}
	pl, err := h.uc.GenerateProfitAndLoss(c.Context(), q.Period)
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(pl)
}

func (h *ReportHandler) generator(format string) documentGenerator {
	switch format {
	case formatPDF:
		return h.pdf
	case formatXML:
		return h.xml
	}
	return nil
}

// parseReportQuery lee period/format; format vacío equivale a json.
func parseReportQuery(c *fiber.Ctx) (dto.ReportQuery, error) {
	var q dto.ReportQuery
	if err := c.QueryParser(&q); err != nil {
		return q, err
	}
	q.Period = strings.TrimSpace(q.Period)
	q.Format = strings.ToLower(strings.TrimSpace(q.Format))
	if q.Format == "" {
		q.Format = formatJSON
	}
	return q, nil
}

// reportError traduce errores clasificados a HTTP: INVALID_PERIOD → 400, NO_DATA → 404.
func reportError(c *fiber.Ctx, err error) error {
	if ce, ok := domain.AsClassified(err); ok {
		status := fiber.StatusBadRequest
		if ce.Code == domain.CodeNoData {
			status = fiber.StatusNotFound
		}
		return c.Status(status).JSON(dto.ErrorResponse{
			Code:        ce.Code,
			Message:     ce.Message,
			UserMessage: ce.UserMessage,
			Recoverable: ce.Recoverable,
			Retryable:   ce.Retryable,
		})
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "CANCELLED", Message: "la solicitud fue cancelada"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func unsupportedFormat(c *fiber.Ctx, format string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code: "UNSUPPORTED_FORMAT", Message: "formato no soportado: " + format,
	})
}

func sendDocument(c *fiber.Ctx, format, name string, doc []byte) error {
	switch format {
	case formatPDF:
		c.Set(fiber.HeaderContentType, "application/pdf")
	case formatXML:
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+"."+format+`"`)
	return c.Send(doc)
}
