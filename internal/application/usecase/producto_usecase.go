// Package usecase contiene los casos de uso operativos del punto de venta:
// catálogo de productos y registro de ventas.
package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tlapasoft/tlapaleria-api/internal/application/dto"
	"github.com/tlapasoft/tlapaleria-api/internal/domain"
	"github.com/tlapasoft/tlapaleria-api/internal/domain/entity"
	"github.com/tlapasoft/tlapaleria-api/internal/domain/repository"
)

const stockMinimoDefault = 10

// ProductoUseCase operaciones de catálogo.
type ProductoUseCase struct {
	productoRepo repository.ProductoRepository
	now          func() time.Time
}

// NewProductoUseCase construye el caso de uso de catálogo.
func NewProductoUseCase(productoRepo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{productoRepo: productoRepo, now: time.Now}
}

// Crear da de alta un producto. StockMinimo no enviado queda en 10.
func (uc *ProductoUseCase) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return nil, fmt.Errorf("el nombre es obligatorio: %w", domain.ErrInvalidInput)
	}
	if req.Precio.IsNegative() {
		return nil, fmt.Errorf("el precio no puede ser negativo: %w", domain.ErrInvalidInput)
	}
	if req.StockActual < 0 {
		return nil, fmt.Errorf("el stock no puede ser negativo: %w", domain.ErrInvalidInput)
	}
	stockMinimo := stockMinimoDefault
	if req.StockMinimo != nil {
		if *req.StockMinimo < 0 {
			return nil, fmt.Errorf("el stock mínimo no puede ser negativo: %w", domain.ErrInvalidInput)
		}
		stockMinimo = *req.StockMinimo
	}

	ahora := uc.now()
	p := &entity.Producto{
		Nombre:             nombre,
		Descripcion:        strings.TrimSpace(req.Descripcion),
		CodigoBarras:       normalizarCodigo(req.CodigoBarras),
		Precio:             req.Precio,
		StockActual:        req.StockActual,
		StockMinimo:        stockMinimo,
		Categoria:          strings.TrimSpace(req.Categoria),
		Ubicacion:          strings.TrimSpace(req.Ubicacion),
		Proveedor:          strings.TrimSpace(req.Proveedor),
		FechaCreacion:      ahora,
		FechaActualizacion: ahora,
	}
	if err := uc.productoRepo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("creando producto: %w", err)
	}
	return toProductoResponse(p), nil
}

// Obtener devuelve un producto por id.
func (uc *ProductoUseCase) Obtener(ctx context.Context, id int64) (*dto.ProductoResponse, error) {
	p, err := uc.productoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("consultando producto %d: %w", id, err)
	}
	if p == nil {
		return nil, fmt.Errorf("producto %d: %w", id, domain.ErrNotFound)
	}
	return toProductoResponse(p), nil
}

// ObtenerPorCodigoBarras busca un producto por su código de barras. Es la
// consulta que usa el escáner del mostrador.
func (uc *ProductoUseCase) ObtenerPorCodigoBarras(ctx context.Context, codigo string) (*dto.ProductoResponse, error) {
	codigo = strings.TrimSpace(codigo)
	if codigo == "" {
		return nil, fmt.Errorf("código de barras vacío: %w", domain.ErrInvalidInput)
	}
	p, err := uc.productoRepo.GetByCodigoBarras(ctx, codigo)
	if err != nil {
		return nil, fmt.Errorf("consultando código %s: %w", codigo, err)
	}
	if p == nil {
		return nil, fmt.Errorf("código %s: %w", codigo, domain.ErrNotFound)
	}
	return toProductoResponse(p), nil
}

// Listar devuelve el catálogo con filtros opcionales.
func (uc *ProductoUseCase) Listar(ctx context.Context, filter repository.ProductoFilter) ([]dto.ProductoResponse, error) {
	productos, err := uc.productoRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listando productos: %w", err)
	}
	out := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		out = append(out, *toProductoResponse(p))
	}
	return out, nil
}

// Actualizar aplica los campos enviados sobre el producto existente.
func (uc *ProductoUseCase) Actualizar(ctx context.Context, id int64, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	p, err := uc.productoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("consultando producto %d: %w", id, err)
	}
	if p == nil {
		return nil, fmt.Errorf("producto %d: %w", id, domain.ErrNotFound)
	}

	if req.Nombre != nil {
		nombre := strings.TrimSpace(*req.Nombre)
		if nombre == "" {
			return nil, fmt.Errorf("el nombre no puede quedar vacío: %w", domain.ErrInvalidInput)
		}
		p.Nombre = nombre
	}
	if req.Descripcion != nil {
		p.Descripcion = strings.TrimSpace(*req.Descripcion)
	}
	if req.CodigoBarras != nil {
		p.CodigoBarras = normalizarCodigo(req.CodigoBarras)
	}
	if req.Precio != nil {
		if req.Precio.IsNegative() {
			return nil, fmt.Errorf("el precio no puede ser negativo: %w", domain.ErrInvalidInput)
		}
		p.Precio = *req.Precio
	}
	if req.StockActual != nil {
		if *req.StockActual < 0 {
			return nil, fmt.Errorf("el stock no puede ser negativo: %w", domain.ErrInvalidInput)
		}
		p.StockActual = *req.StockActual
	}
	if req.StockMinimo != nil {
		if *req.StockMinimo < 0 {
			return nil, fmt.Errorf("el stock mínimo no puede ser negativo: %w", domain.ErrInvalidInput)
		}
		p.StockMinimo = *req.StockMinimo
	}
	if req.Categoria != nil {
		p.Categoria = strings.TrimSpace(*req.Categoria)
	}
	if req.Ubicacion != nil {
		p.Ubicacion = strings.TrimSpace(*req.Ubicacion)
	}
	if req.Proveedor != nil {
		p.Proveedor = strings.TrimSpace(*req.Proveedor)
	}
	p.FechaActualizacion = uc.now()

	if err := uc.productoRepo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("actualizando producto %d: %w", id, err)
	}
	return toProductoResponse(p), nil
}

// Eliminar borra un producto del catálogo.
func (uc *ProductoUseCase) Eliminar(ctx context.Context, id int64) error {
	p, err := uc.productoRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("consultando producto %d: %w", id, err)
	}
	if p == nil {
		return fmt.Errorf("producto %d: %w", id, domain.ErrNotFound)
	}
	if err := uc.productoRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("eliminando producto %d: %w", id, err)
	}
	return nil
}

// normalizarCodigo recorta espacios y convierte códigos vacíos en nil para
// que la restricción UNIQUE de la base no choque entre productos sin código.
func normalizarCodigo(codigo *string) *string {
	if codigo == nil {
		return nil
	}
	c := strings.TrimSpace(*codigo)
	if c == "" {
		return nil
	}
	return &c
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:                 p.ID,
		Nombre:             p.Nombre,
		Descripcion:        p.Descripcion,
		CodigoBarras:       p.CodigoBarras,
		Precio:             p.Precio,
		StockActual:        p.StockActual,
		StockMinimo:        p.StockMinimo,
		Categoria:          p.Categoria,
		Ubicacion:          p.Ubicacion,
		Proveedor:          p.Proveedor,
		FechaCreacion:      p.FechaCreacion,
		FechaActualizacion: p.FechaActualizacion,
	}
}
