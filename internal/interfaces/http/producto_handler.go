package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tlapasoft/tlapaleria-api/internal/application/dto"
	"github.com/tlapasoft/tlapaleria-api/internal/application/usecase"
	"github.com/tlapasoft/tlapaleria-api/internal/domain/repository"
)

// ProductoHandler maneja las peticiones HTTP del catálogo (protegido).
type ProductoHandler struct {
	uc *usecase.ProductoUseCase
}

// NewProductoHandler construye el handler.
func NewProductoHandler(uc *usecase.ProductoUseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc}
}

// Crear godoc
// @Summary      Crear producto
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearProductoRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/productos [post]
func (h *ProductoHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Obtener godoc
// @Summary      Obtener producto por ID
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [get]
func (h *ProductoHandler) Obtener(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return badParam(c, "id debe ser un entero positivo")
	}
	out, err := h.uc.Obtener(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ObtenerPorCodigoBarras godoc
// @Summary      Buscar producto por código de barras
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        codigo  path  string  true  "Código de barras"
// @Success      200  {object}  dto.ProductoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/codigo/{codigo} [get]
func (h *ProductoHandler) ObtenerPorCodigoBarras(c *fiber.Ctx) error {
	out, err := h.uc.ObtenerPorCodigoBarras(c.Context(), c.Params("codigo"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Listar godoc
// @Summary      Listar productos del catálogo
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        categoria   query  string  false  "Filtrar por categoría exacta"
// @Param        buscar      query  string  false  "Búsqueda por texto (sin distinguir acentos)"
// @Param        bajo_stock  query  bool    false  "Solo productos en o bajo su stock mínimo"
// @Success      200  {array}  dto.ProductoResponse
// @Router       /api/productos [get]
func (h *ProductoHandler) Listar(c *fiber.Ctx) error {
	filter := repository.ProductoFilter{
		Categoria: c.Query("categoria"),
		Buscar:    c.Query("buscar"),
		BajoStock: c.QueryBool("bajo_stock"),
	}
	out, err := h.uc.Listar(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Actualizar godoc
// @Summary      Actualizar producto
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.ActualizarProductoRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ProductoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [put]
func (h *ProductoHandler) Actualizar(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return badParam(c, "id debe ser un entero positivo")
	}
	var in dto.ActualizarProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Actualizar(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Eliminar godoc
// @Summary      Eliminar producto (solo admin)
// @Tags         productos
// @Security     Bearer
// @Param        id  path  int  true  "ID del producto"
// @Success      204  "Sin contenido"
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [delete]
func (h *ProductoHandler) Eliminar(c *fiber.Ctx) error {
	id, ok := parseIDParam(c)
	if !ok {
		return badParam(c, "id debe ser un entero positivo")
	}
	if err := h.uc.Eliminar(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
