package repository

import (
	"context"

	"github.com/tlapasoft/tlapaleria-api/internal/domain/entity"
)

// ProductoFilter filtros del listado de catálogo.
type ProductoFilter struct {
	Categoria string
	Buscar    string // busca en nombre, descripción y código de barras
	BajoStock bool   // solo productos con stock_actual <= stock_minimo
}

// ProductoRepository puerto de persistencia del catálogo.
// Los Get devuelven (nil, nil) cuando el producto no existe; el caso de uso
// decide si eso es domain.ErrNotFound.
type ProductoRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Producto, error)
	GetByCodigoBarras(ctx context.Context, codigo string) (*entity.Producto, error)
	List(ctx context.Context, filter ProductoFilter) ([]*entity.Producto, error)
	Create(ctx context.Context, p *entity.Producto) error
	Update(ctx context.Context, p *entity.Producto) error
	Delete(ctx context.Context, id int64) error
	// DescontarStock resta cantidad del stock_actual de forma atómica.
	// Devuelve domain.ErrInsufficientStock si el stock quedaría negativo.
	DescontarStock(ctx context.Context, id int64, cantidad int) error
}
