package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearProductoRequest alta de producto en el catálogo.
type CrearProductoRequest struct {
	Nombre       string          `json:"nombre"`
	Descripcion  string          `json:"descripcion"`
	CodigoBarras *string         `json:"codigo_barras"`
	Precio       decimal.Decimal `json:"precio"`
	StockActual  int             `json:"stock_actual"`
	StockMinimo  *int            `json:"stock_minimo"` // nil -> default 10
	Categoria    string          `json:"categoria"`
	Ubicacion    string          `json:"ubicacion"`
	Proveedor    string          `json:"proveedor"`
}

// ActualizarProductoRequest edición de producto. Los punteros distinguen
// "no enviado" de "enviado en cero".
type ActualizarProductoRequest struct {
	Nombre       *string          `json:"nombre"`
	Descripcion  *string          `json:"descripcion"`
	CodigoBarras *string          `json:"codigo_barras"`
	Precio       *decimal.Decimal `json:"precio"`
	StockActual  *int             `json:"stock_actual"`
	StockMinimo  *int             `json:"stock_minimo"`
	Categoria    *string          `json:"categoria"`
	Ubicacion    *string          `json:"ubicacion"`
	Proveedor    *string          `json:"proveedor"`
}

// ProductoResponse representación JSON de un producto.
type ProductoResponse struct {
	ID                 int64           `json:"id"`
	Nombre             string          `json:"nombre"`
	Descripcion        string          `json:"descripcion"`
	CodigoBarras       *string         `json:"codigo_barras"`
	Precio             decimal.Decimal `json:"precio"`
	StockActual        int             `json:"stock_actual"`
	StockMinimo        int             `json:"stock_minimo"`
	Categoria          string          `json:"categoria"`
	Ubicacion          string          `json:"ubicacion"`
	Proveedor          string          `json:"proveedor"`
	FechaCreacion      time.Time       `json:"fecha_creacion"`
	FechaActualizacion time.Time       `json:"fecha_actualizacion"`
}
