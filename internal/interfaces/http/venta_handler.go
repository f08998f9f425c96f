package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tlapasoft/tlapaleria-api/internal/application/dto"
	"github.com/tlapasoft/tlapaleria-api/internal/application/usecase"
)

// VentaHandler maneja las peticiones HTTP de ventas (protegido).
type VentaHandler struct {
	uc *usecase.VentaUseCase
}

// NewVentaHandler construye el handler.
func NewVentaHandler(uc *usecase.VentaUseCase) *VentaHandler {
	return &VentaHandler{uc: uc}
}

// Registrar godoc
// @Summary      Registrar venta
// @Description  Descuenta stock e inserta la venta en una transacción. Repetir un offline_id devuelve la venta original sin duplicar.
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarVentaRequest  true  "Datos de la venta"
// @Success      201   {object}  dto.VentaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ventas [post]
func (h *VentaHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Registrar(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar godoc
// @Summary      Listar ventas por rango de fechas
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        desde   query  string  false  "Fecha inicial YYYY-MM-DD (default: hoy)"
// @Param        hasta   query  string  false  "Fecha final YYYY-MM-DD inclusive (default: desde)"
// @Param        limit   query  int     false  "Máx. resultados (default 100)"
// @Param        offset  query  int     false  "Desplazamiento (default 0)"
// @Success      200  {array}  dto.VentaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ventas [get]
func (h *VentaHandler) Listar(c *fiber.Ctx) error {
	hoy := time.Now()
	desde, ok := parseFechaQuery(c, "desde", time.Date(hoy.Year(), hoy.Month(), hoy.Day(), 0, 0, 0, 0, hoy.Location()))
	if !ok {
		return badParam(c, "desde debe tener formato YYYY-MM-DD")
	}
	hasta, ok := parseFechaQuery(c, "hasta", desde)
	if !ok {
		return badParam(c, "hasta debe tener formato YYYY-MM-DD")
	}
	limit, ok := parseIntQuery(c, "limit", 100)
	if !ok {
		return badParam(c, "limit debe ser un entero")
	}
	offset, ok := parseIntQuery(c, "offset", 0)
	if !ok {
		return badParam(c, "offset debe ser un entero")
	}

	// hasta es inclusivo a nivel de día: el rango real termina al día siguiente.
	out, err := h.uc.Listar(c.Context(), desde, hasta.AddDate(0, 0, 1), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// EstadisticasDia godoc
// @Summary      Totales de ventas del día en curso
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.EstadisticasDiaDTO
// @Router       /api/ventas/estadisticas/dia [get]
func (h *VentaHandler) EstadisticasDia(c *fiber.Ctx) error {
	out, err := h.uc.EstadisticasDelDia(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// parseFechaQuery lee un query param YYYY-MM-DD en hora local. Ausente
// devuelve el default; presente pero malformado devuelve ok=false.
func parseFechaQuery(c *fiber.Ctx, name string, def time.Time) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
