package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-ledger/internal/application/inventory"
	"github.com/jhoicas/inventory-ledger/pkg/logger"
)

// ReportHandler expone el reporte de saldos.
type ReportHandler struct {
	uc  *inventory.BalanceUseCase
	log *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *inventory.BalanceUseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, log: log}
}

// Balance godoc
// @Summary      Reporte de saldos por producto y ubicación
// @Description  Se recalcula desde el libro completo en cada solicitud. Incluye pares con saldo cero.
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.BalanceReportResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/balance [get]
func (h *ReportHandler) Balance(c *fiber.Ctx) error {
	out, err := h.uc.Report(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// BalancePDF godoc
// @Summary      Descargar reporte de saldos en PDF
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/balance/pdf [get]
func (h *ReportHandler) BalancePDF(c *fiber.Ctx) error {
	doc, filename, err := h.uc.ReportPDF(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(doc)
}
