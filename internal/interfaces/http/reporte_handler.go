package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastano/almacen-admin/internal/application/dto"
	"github.com/jcastano/almacen-admin/internal/application/reportes"
)

// ReporteHandler sirve los reportes descargables (protegido).
type ReporteHandler struct {
	uc *reportes.ReporteUseCase
}

// NewReporteHandler construye el handler.
func NewReporteHandler(uc *reportes.ReporteUseCase) *ReporteHandler {
	return &ReporteHandler{uc: uc}
}

// InventarioPDF descarga el inventario valorizado (solo artículos activos).
func (h *ReporteHandler) InventarioPDF(c *fiber.Ctx) error {
	pdf, err := h.uc.InventarioPDF(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario.pdf"`)
	return c.Send(pdf)
}

// MovimientosPDF descarga el reporte de movimientos, con los mismos filtros
// que el listado.
func (h *ReporteHandler) MovimientosPDF(c *fiber.Ctx) error {
	desde, err := parseFecha(c.Query("desde"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "desde inválida (2006-01-02)"})
	}
	hasta, err := parseFecha(c.Query("hasta"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "hasta inválida (2006-01-02)"})
	}
	pdf, err := h.uc.MovimientosPDF(c.Context(), c.Query("tipo"), desde, hasta)
	if err != nil {
		return responderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="movimientos.pdf"`)
	return c.Send(pdf)
}

// ArticulosCSV exporta el catálogo completo en CSV.
func (h *ReporteHandler) ArticulosCSV(c *fiber.Ctx) error {
	csvBytes, err := h.uc.ArticulosCSV(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="articulos.csv"`)
	return c.Send(csvBytes)
}
