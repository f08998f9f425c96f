package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un artículo del catálogo de la tlapalería.
// StockMinimo es un umbral de aviso (default 10): el almacén no lo hace cumplir,
// solo alimenta las alertas del motor de inventario.
type Producto struct {
	ID                 int64
	Nombre             string
	Descripcion        string
	CodigoBarras       *string // único cuando está presente
	Precio             decimal.Decimal
	StockActual        int
	StockMinimo        int
	Categoria          string
	Ubicacion          string
	Proveedor          string
	FechaCreacion      time.Time
	FechaActualizacion time.Time
}
