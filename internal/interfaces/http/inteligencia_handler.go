package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tlapasoft/tlapaleria-api/internal/application/dto"
	"github.com/tlapasoft/tlapaleria-api/internal/application/inteligencia"
)

// InteligenciaHandler maneja los endpoints del motor de inventario inteligente.
type InteligenciaHandler struct {
	uc      *inteligencia.InteligenciaUseCase
	reporte *inteligencia.ReporteUseCase
}

// NewInteligenciaHandler construye el handler.
func NewInteligenciaHandler(uc *inteligencia.InteligenciaUseCase, reporte *inteligencia.ReporteUseCase) *InteligenciaHandler {
	return &InteligenciaHandler{uc: uc, reporte: reporte}
}

// PredecirDemanda godoc
// @Summary      Predicción de demanda de un producto
// @Description  Proyección semanal y mensual a partir de las ventas de la ventana indicada.
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        id    path   int  true   "ID del producto"
// @Param        dias  query  int  false  "Ventana de análisis en días (default 30, acotado a [1, 365])"
// @Success      200  {object}  dto.PrediccionDemandaDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/prediccion/{id} [get]
func (h *InteligenciaHandler) PredecirDemanda(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return badParam(c, "id debe ser un entero positivo")
	}
	dias, ok := parseIntQuery(c, "dias", 0)
	if !ok {
		return badParam(c, "dias debe ser un entero")
	}
	out, err := h.uc.PredecirDemanda(c.Context(), id, dias)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PuntoReorden godoc
// @Summary      Punto de reorden de un producto
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {object}  dto.PuntoReordenDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/punto-reorden/{id} [get]
func (h *InteligenciaHandler) PuntoReorden(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return badParam(c, "id debe ser un entero positivo")
	}
	out, err := h.uc.CalcularPuntoReorden(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Alertas godoc
// @Summary      Alertas de stock bajo
// @Description  Productos en o bajo su stock mínimo, ordenados por severidad.
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AlertasResponse
// @Router       /api/inventario/alertas [get]
func (h *InteligenciaHandler) Alertas(c *fiber.Ctx) error {
	alertas, err := h.uc.GenerarAlertas(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.AlertasResponse{Total: len(alertas), Alertas: alertas})
}

// LentoMovimiento godoc
// @Summary      Productos de lento movimiento
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        dias  query  int  false  "Umbral de días sin venta (default 60)"
// @Success      200  {object}  dto.LentoMovimientoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventario/lento-movimiento [get]
func (h *InteligenciaHandler) LentoMovimiento(c *fiber.Ctx) error {
	dias, ok := parseIntQuery(c, "dias", 0)
	if !ok {
		return badParam(c, "dias debe ser un entero")
	}
	if dias <= 0 {
		dias = 60
	}
	productos, err := h.uc.AnalizarLentoMovimiento(c.Context(), dias)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.LentoMovimientoResponse{
		Total:        len(productos),
		DiasAnalisis: dias,
		Productos:    productos,
	})
}

// ValorInventario godoc
// @Summary      Valuación global del inventario
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ValorInventarioDTO
// @Router       /api/inventario/valor [get]
func (h *InteligenciaHandler) ValorInventario(c *fiber.Ctx) error {
	out, err := h.uc.CalcularValorInventario(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Rentables godoc
// @Summary      Ranking de productos más rentables (últimos 30 días)
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Máx. productos (default 10, max 200)"
// @Success      200  {object}  dto.RentablesResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventario/rentables [get]
func (h *InteligenciaHandler) Rentables(c *fiber.Ctx) error {
	limit, ok := parseIntQuery(c, "limit", 0)
	if !ok {
		return badParam(c, "limit debe ser un entero")
	}
	productos, err := h.uc.ObtenerProductosRentables(c.Context(), limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.RentablesResponse{Total: len(productos), Productos: productos})
}

// Reporte godoc
// @Summary      Reporte de inventario en PDF
// @Description  Valuación global más el detalle de alertas, listo para imprimir.
// @Tags         inventario
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/inventario/reporte [get]
func (h *InteligenciaHandler) Reporte(c *fiber.Ctx) error {
	pdfBytes, err := h.reporte.GenerarPDF(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="reporte-inventario.pdf"`)
	return c.Send(pdfBytes)
}

// parseIDParam lee :id como entero positivo; "abc" o "-1" no valen.
func parseIDParam(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// parseIntQuery lee un query param entero. Ausente devuelve el default;
// presente pero no numérico devuelve ok=false (error del cliente, no se
// ignora en silencio).
func parseIntQuery(c *fiber.Ctx, name string, def int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func badParam(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
}
